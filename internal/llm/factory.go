package llm

import (
	"fmt"
	"strings"

	"dev-assistant/internal/config"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Factory creates LLM clients with consistent logic
type Factory struct {
	AnthropicAPIKey    string
	AnthropicBaseURL   string
	OpenaiAPIKey       string
	OpenaiBaseURL      string
	OpenRouterReferrer string
	OpenRouterTitle    string
	MaxTokens          int
	Temperature        float32
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		AnthropicAPIKey:    cfg.AnthropicAPIKey,
		AnthropicBaseURL:   cfg.AnthropicBaseURL,
		OpenaiAPIKey:       cfg.OpenAIAPIKey,
		OpenaiBaseURL:      cfg.OpenAIBaseURL,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		MaxTokens:          cfg.MaxTokens,
		Temperature:        cfg.Temperature,
	}
}

func (f *Factory) CreateClient(provider, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderAnthropic:
		return NewAnthropic(f.AnthropicAPIKey, f.AnthropicBaseURL, model, f.MaxTokens, f.Temperature), nil
	case ProviderOpenAI:
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, model, f.MaxTokens, f.Temperature, f.OpenRouterReferrer, f.OpenRouterTitle), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
