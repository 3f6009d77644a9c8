package trips_fx

import (
	"go.uber.org/fx"

	"rumbo/internal/api/controllers"
	"rumbo/internal/config"
	"rumbo/pkg/store"
)

var Module = fx.Provide(
	ProvideItineraryStore,
	controllers.NewTripsController,
)

func ProvideItineraryStore(cfg *config.Config) (store.ItineraryStore, error) {
	return store.NewFileItineraryStore(cfg.StorePath)
}
