package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"rumbo/internal/config"
	"rumbo/pkg/logger"
	"rumbo/pkg/utils"
)

// Placeholder values shipped in .env.example files. A key equal to its
// placeholder is treated as absent. OpenAI intentionally has no
// placeholder check: presence alone qualifies it.
const (
	groqKeyPlaceholder   = "your_groq_api_key_here"
	geminiKeyPlaceholder = "your_gemini_api_key_here"
)

const defaultAttemptTimeout = 60 * time.Second

// Provider is one link of the fallback chain: a name for failure
// reporting, a credential check, and the invoke capability.
type Provider struct {
	Name   string
	Usable bool
	Invoke func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type FallbackResult struct {
	Provider string
	Content  string
}

type FallbackOrchestratorInterface interface {
	// HasUsableProvider reports whether any provider in the chain has a
	// usable credential, without touching the network.
	HasUsableProvider() bool
	// Generate walks the chain in order, returning the first successful
	// response. Providers without a usable credential are skipped; each
	// failure advances to the next link.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (*FallbackResult, error)
}

type fallbackOrchestrator struct {
	providers      []Provider
	attemptTimeout time.Duration
}

// NewFallbackOrchestrator builds the fixed Groq → Gemini → OpenAI chain
// from configured credentials.
func NewFallbackOrchestrator(cfg config.LLMConfig) FallbackOrchestratorInterface {
	groq := utils.NewGroqChatClient(cfg.GroqAPIKey, cfg.GroqModel)
	gemini := utils.NewGeminiChatClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	openAI := utils.NewOpenAIChatClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	return NewFallbackOrchestratorFromProviders([]Provider{
		{
			Name:   groq.Name(),
			Usable: cfg.GroqAPIKey != "" && cfg.GroqAPIKey != groqKeyPlaceholder,
			Invoke: groq.Invoke,
		},
		{
			Name:   gemini.Name(),
			Usable: cfg.GeminiAPIKey != "" && cfg.GeminiAPIKey != geminiKeyPlaceholder,
			Invoke: gemini.Invoke,
		},
		{
			Name:   openAI.Name(),
			Usable: cfg.OpenAIAPIKey != "",
			Invoke: openAI.Invoke,
		},
	})
}

func NewFallbackOrchestratorFromProviders(providers []Provider) FallbackOrchestratorInterface {
	return &fallbackOrchestrator{
		providers:      providers,
		attemptTimeout: defaultAttemptTimeout,
	}
}

func (f *fallbackOrchestrator) HasUsableProvider() bool {
	for _, p := range f.providers {
		if p.Usable {
			return true
		}
	}
	return false
}

func (f *fallbackOrchestrator) Generate(ctx context.Context, systemPrompt, userPrompt string) (*FallbackResult, error) {
	if !f.HasUsableProvider() {
		return nil, utils.ErrNoUsableKey
	}

	var failures []string
	for _, p := range f.providers {
		if !p.Usable {
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, f.attemptTimeout)
		content, err := p.Invoke(attemptCtx, systemPrompt, userPrompt)
		cancel()

		if err == nil {
			logger.Log.Info("itinerary generated", zap.String("provider", p.Name))
			return &FallbackResult{Provider: p.Name, Content: content}, nil
		}

		logger.Log.Warn("provider failed, trying next", zap.String("provider", p.Name), zap.Error(err))
		failures = append(failures, fmt.Sprintf("%s: %v", p.Name, err))
	}

	return nil, fmt.Errorf("Todas las APIs fallaron. %s", strings.Join(failures, ". "))
}
