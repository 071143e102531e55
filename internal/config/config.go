package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI    LLMProvider = "openai"
	ProviderAnthropic LLMProvider = "anthropic"
)

type Config struct {
	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"anthropic"`
	AnthropicAPIKey  string      `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string      `env:"ANTHROPIC_BASE_URL"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	Model            string      `env:"LLM_MODEL" envDefault:"claude-3-opus-20240229"`
	MaxTokens        int         `env:"LLM_MAX_TOKENS" envDefault:"1000"`
	Temperature      float32     `env:"LLM_TEMPERATURE" envDefault:"0.7"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Project management storage
	ProjectRoot       string `env:"PROJECT_ROOT" envDefault:"."`
	ProjectName       string `env:"PROJECT_NAME" envDefault:"Confidant"`
	StorageBackend    string `env:"STORAGE_BACKEND" envDefault:"file"`
	SQLitePath        string `env:"SQLITE_PATH" envDefault:".project_management/project.db"`
	ContextWindowDays int    `env:"CONTEXT_WINDOW_DAYS" envDefault:"30"`

	// Conversation history
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"20"`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH"`

	// Chat transcript
	TranscriptPath string `env:"TRANSCRIPT_PATH" envDefault:"logs/interactions.jsonl"`

	// Web server
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// Scheduled daily report export
	DailyReport bool `env:"DAILY_REPORT" envDefault:"false"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// Validate checks that the credential for the selected provider is present.
// A missing credential is fatal at startup, not something to limp past.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY must be set for provider %q", c.LLMProvider)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set for provider %q", c.LLMProvider)
		}
	default:
		return fmt.Errorf("unknown llm provider: %s", c.LLMProvider)
	}
	return nil
}
