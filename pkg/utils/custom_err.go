package utils

import "errors"

var (
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoUsableKey       = errors.New("Se requiere GROQ_API_KEY, GEMINI_API_KEY u OPENAI_API_KEY válida")
)
