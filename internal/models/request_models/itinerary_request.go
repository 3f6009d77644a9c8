package request_models

// TravelPreferences mirrors the web client's form contract.
type TravelPreferences struct {
	Destination  string   `json:"destination"`
	Duration     int      `json:"duration"`
	Budget       string   `json:"budget"`
	Interests    []string `json:"interests"`
	Restrictions string   `json:"restrictions"`
}

type GenerateItineraryRequest struct {
	Preferences  *TravelPreferences `json:"preferences"`
	SpecificData map[string]string  `json:"specificData,omitempty"`
}

type SaveItineraryRequest struct {
	Preferences TravelPreferences `json:"preferences"`
	Itinerary   string            `json:"itinerary"`
}
