package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dev-assistant/internal/assistant"
	"dev-assistant/internal/config"
	"dev-assistant/internal/conversation"
	"dev-assistant/internal/llm"
	"dev-assistant/internal/project"
	"dev-assistant/internal/transcript"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "assistant",
		Short: "Personal development assistant with project memory",
	}
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: .env file not found: %v\n", err)
	}
	cfg = config.New()

	rootCmd.AddCommand(serveCmd(), chatCmd(), logCmd(), summaryCmd(), reportCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProjectManager(log zerolog.Logger) (*project.Manager, error) {
	var store project.Store
	switch cfg.StorageBackend {
	case "sqlite":
		s, err := project.NewSQLiteStore(cfg.ProjectRoot, cfg.ProjectName, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		store = s
	case "file", "":
		store = project.NewFileStore(cfg.ProjectRoot, cfg.ProjectName, log)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
	return project.NewManager(cfg.ProjectName, store, log)
}

func newAssistant(projects *project.Manager, log zerolog.Logger) (*assistant.Assistant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.Model)
	if err != nil {
		return nil, err
	}

	opts := []assistant.Option{}
	if cfg.SystemPromptPath != "" {
		data, err := os.ReadFile(cfg.SystemPromptPath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.SystemPromptPath).Msg("system prompt file unreadable, using built-in")
		} else {
			opts = append(opts, assistant.WithRolePrompt(string(data)))
		}
	}
	if cfg.TranscriptPath != "" {
		rec, err := transcript.NewFileRecorder(cfg.TranscriptPath)
		if err != nil {
			log.Warn().Err(err).Msg("failed to init transcript recorder")
		} else {
			opts = append(opts, assistant.WithRecorder(rec))
		}
	}

	history := conversation.NewManager(cfg.HistoryLimit)
	return assistant.New(cfg.ProjectName, client, history, projects, cfg.ContextWindowDays, log, opts...), nil
}
