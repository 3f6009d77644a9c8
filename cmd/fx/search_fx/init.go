package search_fx

import (
	"net/http"
	"time"

	"go.uber.org/fx"

	"rumbo/internal/config"
	"rumbo/internal/services"
)

const searchTimeout = 15 * time.Second

var Module = fx.Provide(ProvideSearchService)

func ProvideSearchService(cfg *config.Config) services.SearchServiceInterface {
	return services.NewSerperSearchService(cfg.Search.SerperAPIKey, &http.Client{
		Timeout: searchTimeout,
	})
}
