package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRequiresProviderCredential(t *testing.T) {
	cfg := &Config{LLMProvider: ProviderAnthropic}
	require.Error(t, cfg.Validate())

	cfg.AnthropicAPIKey = "sk-test"
	require.NoError(t, cfg.Validate())

	cfg = &Config{LLMProvider: ProviderOpenAI}
	require.Error(t, cfg.Validate())
	cfg.OpenAIAPIKey = "sk-test"
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := &Config{LLMProvider: "phi"}
	require.Error(t, cfg.Validate())
}
