package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rumbo/internal/knowledge"
	"rumbo/internal/models/request_models"
)

func TestBuildContext_OmitsEmptyOptionals(t *testing.T) {
	entry := &knowledge.Destination{
		Destination:    "Roma",
		Country:        "Italia",
		TopAttractions: []string{"Coliseo"},
		Cuisine:        []string{"gelato"},
		Tips:           "Reserva el Vaticano.",
	}

	context := BuildContext(entry, "", nil)

	assert.Contains(t, context, "Atracciones principales: Coliseo")
	assert.Contains(t, context, "Gastronomía: gelato")
	assert.Contains(t, context, "Tips: Reserva el Vaticano.")
	assert.NotContains(t, context, "Restaurantes conocidos")
	assert.NotContains(t, context, "Barrios recomendados")
	assert.NotContains(t, context, "INFORMACIÓN DE INTERNET")
}

func TestBuildContext_NilKnowledgeStillCarriesInternet(t *testing.T) {
	context := BuildContext(nil, "resultado de búsqueda", nil)

	assert.NotContains(t, context, "INFORMACIÓN DE BASE DE DATOS")
	assert.Contains(t, context, "--- INFORMACIÓN DE INTERNET (ACTUALIZADA) ---")
	assert.Contains(t, context, "resultado de búsqueda")
}

func TestBuildContext_IncludesUserSuppliedData(t *testing.T) {
	context := BuildContext(nil, "", map[string]string{
		"ticketPrice": "120 USD",
		"blank":       "   ",
	})

	assert.Contains(t, context, "--- DATOS PROPORCIONADOS POR EL USUARIO ---")
	assert.Contains(t, context, "ticketPrice: 120 USD")
	assert.NotContains(t, context, "blank")
}

func TestBuildSystemPrompt_WrapsContextWithMarkers(t *testing.T) {
	prompt := BuildSystemPrompt("CONTEXT_BLOCK")

	assert.Contains(t, prompt, "DÍA 1: [Título del día]")
	assert.Contains(t, prompt, "--- INFORMACIÓN DISPONIBLE ---\nCONTEXT_BLOCK\n--- FIN INFORMACIÓN ---")
}

func TestBuildUserPrompt_FixedOrderAndOptionalRestrictions(t *testing.T) {
	prefs := request_models.TravelPreferences{
		Destination: "Tokio",
		Duration:    5,
		Budget:      "alto",
		Interests:   []string{"cultura", "gastronomía"},
	}

	prompt := BuildUserPrompt(prefs)
	assert.Contains(t, prompt, "- Destino: Tokio\n- Duración: 5 días\n- Presupuesto: alto\n- Intereses: cultura, gastronomía")
	assert.NotContains(t, prompt, "Restricciones")

	prefs.Restrictions = "vegetariano"
	prompt = BuildUserPrompt(prefs)
	assert.Contains(t, prompt, "- Restricciones/Preferencias: vegetariano")
}
