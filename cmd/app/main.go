package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rumbo/cmd/fx/config_fx"
	"rumbo/cmd/fx/itinerary_fx"
	"rumbo/cmd/fx/llm_fx"
	"rumbo/cmd/fx/search_fx"
	"rumbo/cmd/fx/trips_fx"
	"rumbo/internal/api/controllers"
	"rumbo/internal/config"
	"rumbo/pkg/logger"
	"rumbo/pkg/middleware"
)

func main() {
	// Missing .env is fine in production where env vars come from the host.
	_ = godotenv.Load()

	if err := logger.Init(zapcore.InfoLevel, zap.String("service", "rumbo")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	app := fx.New(
		config_fx.Module,
		llm_fx.Module,
		search_fx.Module,
		itinerary_fx.Module,
		trips_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Log.Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
				if err := engine.Run(":" + cfg.ServerPort); err != nil {
					logger.Log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController) {

	api := r.Group("/api")
	api.POST("/generate-itinerary", itineraryController.GenerateItinerary)
	api.GET("/debug-env", itineraryController.DebugEnv)

	api.GET("/itineraries", tripsController.ListItineraries)
	api.POST("/itineraries", tripsController.SaveItinerary)
	api.DELETE("/itineraries", tripsController.ClearItineraries)
	api.GET("/itineraries/:id", tripsController.GetItinerary)
	api.PUT("/itineraries/:id", tripsController.UpdateItinerary)
	api.DELETE("/itineraries/:id", tripsController.DeleteItinerary)
}
