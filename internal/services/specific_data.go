package services

import (
	"strings"

	"rumbo/internal/models/request_models"
	"rumbo/internal/models/response_models"
)

// eventMarkers flag trips built around major events, where ticket prices
// and availability can't be trusted to a model and must come from the
// user.
var eventMarkers = []string{
	"mundial",
	"eurocopa",
	"juegos olímpicos",
	"gran premio",
	"super bowl",
	"concierto",
	"festival",
	"final de",
}

// DetectSpecificDataRequest returns a form request when the preferences
// mention a major event and no user-supplied data accompanies them.
func DetectSpecificDataRequest(preferences request_models.TravelPreferences) *response_models.SpecificDataRequest {
	haystack := strings.ToLower(preferences.Restrictions + " " + strings.Join(preferences.Interests, " "))

	matched := false
	for _, marker := range eventMarkers {
		if strings.Contains(haystack, marker) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}

	return &response_models.SpecificDataRequest{
		Type: "event-tickets",
		Fields: []response_models.SpecificDataField{
			{Name: "eventName", Label: "Nombre del evento", Type: "text"},
			{Name: "ticketPrice", Label: "Precio del boleto (rango conocido)", Type: "number"},
			{Name: "purchaseSource", Label: "Dónde compraste o planeas comprar los boletos", Type: "text"},
			{Name: "notes", Label: "Notas adicionales sobre el evento", Type: "textarea"},
		},
	}
}
