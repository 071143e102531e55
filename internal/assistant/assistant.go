package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"dev-assistant/internal/conversation"
	"dev-assistant/internal/llm"
	"dev-assistant/internal/project"
	"dev-assistant/internal/transcript"
)

const defaultRolePrompt = `You are an expert AI assistant helping with the %s project.

Project Context:
%s

Your responsibilities:
- Provide clear, concise, and actionable advice
- Use markdown for code formatting
- Help with project development, design, and strategy
- Break down complex topics into easy-to-understand explanations
- Maintain and build upon the project's context and progress
- Offer strategic insights based on the project's current state`

const fallbackContext = `Default Project Context:
Confidant is a privacy-focused, locally-run AI agent designed to preserve personal memories
and provide secure, confidential data storage with robust access control mechanisms.`

// replyExcerptLen bounds how much of a reply lands in the follow-up
// meeting record's action items.
const replyExcerptLen = 200

// Projects is the slice of the project manager the assistant needs.
type Projects interface {
	RecentContext(days int) (string, error)
	LogMeeting(d project.MeetingDetails) (string, error)
}

// Assistant orchestrates one chat turn end-to-end: project context,
// conversation history, LLM call, best-effort meeting log.
type Assistant struct {
	projectName string
	llm         llm.Client
	history     *conversation.Manager
	projects    Projects
	recorder    transcript.Recorder
	windowDays  int
	rolePrompt  string
	log         zerolog.Logger
}

// Option tweaks an Assistant at construction time.
type Option func(*Assistant)

// WithRolePrompt overrides the built-in role preamble. The template
// receives the project name and the project-context block in order.
func WithRolePrompt(tpl string) Option {
	return func(a *Assistant) {
		if tpl != "" {
			a.rolePrompt = tpl
		}
	}
}

// WithRecorder attaches a transcript recorder for chat exchanges.
func WithRecorder(r transcript.Recorder) Option {
	return func(a *Assistant) { a.recorder = r }
}

func New(projectName string, client llm.Client, history *conversation.Manager, projects Projects, windowDays int, log zerolog.Logger, opts ...Option) *Assistant {
	a := &Assistant{
		projectName: projectName,
		llm:         client,
		history:     history,
		projects:    projects,
		windowDays:  windowDays,
		rolePrompt:  defaultRolePrompt,
		log:         log,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Respond runs one chat turn and always returns user-visible text.
// Provider failures are converted into an error string, never a fault.
func (a *Assistant) Respond(ctx context.Context, sessionID, query string) string {
	projectContext, err := a.projects.RecentContext(a.windowDays)
	if err != nil {
		a.log.Warn().Err(err).Msg("could not retrieve project context, using fallback")
		projectContext = fallbackContext
	}

	a.history.AppendUser(sessionID, query)
	messages := a.history.Snapshot(sessionID)
	systemPrompt := fmt.Sprintf(a.rolePrompt, a.projectName, projectContext)

	resp, err := a.llm.Generate(ctx, systemPrompt, messages)
	if err != nil {
		a.log.Error().Err(err).Msg("llm generation failed")
		return fmt.Sprintf("An error occurred while processing your request. Please try again. Error details: %v", err)
	}

	a.history.AppendAssistant(sessionID, resp.Content)
	a.logExchange(sessionID, query, resp)
	return resp.Content
}

// Reset clears the session's conversation history.
func (a *Assistant) Reset(sessionID string) {
	a.history.Reset(sessionID)
}

// logExchange records the turn as a meeting record and a transcript
// event. Both are best effort; failures are warned about and never
// surface to the caller.
func (a *Assistant) logExchange(sessionID, query string, resp llm.Response) {
	if _, err := a.projects.LogMeeting(project.MeetingDetails{
		Participants:   []string{"User", "AI Assistant"},
		KeyDiscussions: []string{query},
		ActionItems:    []string{truncate(resp.Content, replyExcerptLen) + "..."},
	}); err != nil {
		a.log.Warn().Err(err).Msg("could not log meeting for chat exchange")
	}

	if a.recorder == nil {
		return
	}
	if err := a.recorder.AppendExchange(transcript.Event{
		Time:             time.Now(),
		SessionID:        sessionID,
		Query:            query,
		Reply:            resp.Content,
		Model:            resp.Model,
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
		TotalTokens:      resp.TotalTokens,
	}); err != nil {
		a.log.Warn().Err(err).Msg("could not record chat transcript")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
