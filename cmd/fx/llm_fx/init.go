package llm_fx

import (
	"go.uber.org/fx"

	"rumbo/internal/config"
	"rumbo/internal/services"
)

var Module = fx.Provide(ProvideFallbackOrchestrator)

// ProvideFallbackOrchestrator wires the Groq → Gemini → OpenAI chain
// from configured credentials. Usability is decided here, once, at
// startup; whether any provider is usable is only surfaced per-request.
func ProvideFallbackOrchestrator(cfg *config.Config) services.FallbackOrchestratorInterface {
	return services.NewFallbackOrchestrator(cfg.LLM)
}
