package itinerary_fx

import (
	"go.uber.org/fx"

	"rumbo/internal/api/controllers"
	"rumbo/internal/services"
)

var Module = fx.Provide(
	services.NewItineraryService,
	controllers.NewItineraryController,
)
