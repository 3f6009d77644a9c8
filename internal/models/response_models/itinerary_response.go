package response_models

import "rumbo/internal/models/request_models"

// DaySchedule is the per-day projection parsed out of the raw itinerary
// text. It is recomputed on every read and never persisted.
type DaySchedule struct {
	Day       int      `json:"day"`
	Title     string   `json:"title"`
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
	Budget    string   `json:"budget,omitempty"`
}

type SavedItinerary struct {
	ID          string                           `json:"id"`
	Preferences request_models.TravelPreferences `json:"preferences"`
	Itinerary   string                           `json:"itinerary"`
	CreatedAt   string                           `json:"createdAt"`
}

type ItineraryDetailResponse struct {
	SavedItinerary
	Days []DaySchedule `json:"days"`
}

type SpecificDataField struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// SpecificDataRequest asks the client to collect authoritative data
// (ticket prices and the like) before an itinerary is generated.
type SpecificDataRequest struct {
	Type   string              `json:"type"`
	Fields []SpecificDataField `json:"fields"`
}
