package config

import "os"

type LLMConfig struct {
	GroqAPIKey   string
	GroqModel    string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
}

type SearchConfig struct {
	SerperAPIKey string
}

type Config struct {
	ServerPort string
	AppEnv     string
	StorePath  string
	LLM        LLMConfig
	Search     SearchConfig
}

// IsDevelopment controls whether raw error text is echoed in API responses.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}

func Load() *Config {
	return &Config{
		ServerPort: getEnvOrDefault("PORT", "8080"),
		AppEnv:     getEnvOrDefault("APP_ENV", "development"),
		StorePath:  getEnvOrDefault("ITINERARY_STORE_PATH", "travel-itineraries.json"),
		LLM: LLMConfig{
			GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
			GroqModel:    getEnvOrDefault("GROQ_MODEL", "llama-3.1-8b-instant"),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
			OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:  getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Search: SearchConfig{
			SerperAPIKey: os.Getenv("SERPER_API_KEY"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
