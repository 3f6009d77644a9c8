package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// defaultTemperature matches what the web UI has always requested.
const defaultTemperature = 0.7

// ChatClientInterface is the single capability the fallback chain needs
// from a provider: turn a system+user prompt pair into text.
type ChatClientInterface interface {
	Name() string
	Invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAICompatibleClient serves both OpenAI itself and Groq, whose chat
// completion API is OpenAI-compatible behind a different base URL.
type OpenAICompatibleClient struct {
	name   string
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) *OpenAICompatibleClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAICompatibleClient{
		name:   "OpenAI",
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func NewGroqChatClient(apiKey, model string) *OpenAICompatibleClient {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &OpenAICompatibleClient{
		name:   "Groq",
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAICompatibleClient) Name() string {
	return c.name
}

func (c *OpenAICompatibleClient) Invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: defaultTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from provider")
	}
	return resp.Choices[0].Message.Content, nil
}

// GeminiChatClient wraps the generative-ai-go SDK.
type GeminiChatClient struct {
	apiKey string
	model  string
}

func NewGeminiChatClient(apiKey, model string) *GeminiChatClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiChatClient{apiKey: apiKey, model: model}
}

func (c *GeminiChatClient) Name() string {
	return "Gemini"
}

func (c *GeminiChatClient) Invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	m := client.GenerativeModel(c.model)
	m.SetTemperature(defaultTemperature)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return sb.String(), nil
}
