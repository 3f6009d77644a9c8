package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rumbo/internal/config"
	"rumbo/internal/models/request_models"
	"rumbo/internal/services"
	"rumbo/pkg/logger"
)

// ItineraryController keeps the original web client's wire contract:
// plain {itinerary}/{error} bodies rather than the envelope the trips
// API uses.
type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	cfg              *config.Config
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, cfg *config.Config) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		cfg:              cfg,
	}
}

// GenerateItinerary godoc
// @Summary Generate a travel itinerary
// @Description Build prompts from preferences, knowledge and web search, then run the LLM fallback chain
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip preferences and optional collected data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/generate-itinerary [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Preferences == nil ||
		strings.TrimSpace(req.Preferences.Destination) == "" || req.Preferences.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destino y duración son requeridos"})
		return
	}

	if len(req.SpecificData) == 0 {
		if dataRequest := services.DetectSpecificDataRequest(*req.Preferences); dataRequest != nil {
			c.JSON(http.StatusOK, gin.H{
				"needsSpecificData": true,
				"dataRequest":       dataRequest,
			})
			return
		}
	}

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), *req.Preferences, req.SpecificData)
	if err != nil {
		logger.Log.Error("itinerary generation failed",
			zap.String("destination", req.Preferences.Destination), zap.Error(err))

		body := gin.H{"error": userFacingGenerationError(err)}
		if ic.cfg.IsDevelopment() {
			body["debug"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"itinerary": itinerary})
}

// userFacingGenerationError maps internal failure text onto the fixed
// set of messages the client knows how to display.
func userFacingGenerationError(err error) string {
	message := err.Error()
	switch {
	case strings.Contains(message, "credit balance is too low"):
		return "API sin créditos disponibles. Verifica tu saldo o configura una API key diferente."
	case strings.Contains(message, "Todas las APIs fallaron"):
		return "Todas las APIs fallaron. Verifica tus credenciales y saldos."
	case strings.Contains(message, "Se requiere"):
		return "No se encontró ninguna API key válida. Configura al menos un proveedor."
	case strings.Contains(message, "API key"):
		return "API key no válida o no configurada correctamente."
	default:
		return "Error al generar itinerario."
	}
}

// DebugEnv godoc
// @Summary Credential presence flags
// @Description Report which credentials are configured; booleans only, never values
// @Tags Debug
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/debug-env [get]
func (ic *ItineraryController) DebugEnv(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "API Debug Info",
		"environment": gin.H{
			"GROQ_API_KEY":   ic.cfg.LLM.GroqAPIKey != "",
			"GEMINI_API_KEY": ic.cfg.LLM.GeminiAPIKey != "",
			"OPENAI_API_KEY": ic.cfg.LLM.OpenAIAPIKey != "",
			"SERPER_API_KEY": ic.cfg.Search.SerperAPIKey != "",
			"APP_ENV":        ic.cfg.AppEnv,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		},
	})
}
