package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"dev-assistant/internal/conversation"
	"dev-assistant/internal/llm"
	"dev-assistant/internal/project"
)

type fakeLLM struct {
	reply        string
	err          error
	systemPrompt string
	messages     []llm.Message
}

func (f *fakeLLM) Generate(_ context.Context, systemPrompt string, messages []llm.Message) (llm.Response, error) {
	f.systemPrompt = systemPrompt
	f.messages = messages
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Content: f.reply, Model: "fake-model", TotalTokens: 7}, nil
}

type fakeProjects struct {
	context    string
	contextErr error
	meetingErr error
	meetings   []project.MeetingDetails
}

func (f *fakeProjects) RecentContext(days int) (string, error) {
	return f.context, f.contextErr
}

func (f *fakeProjects) LogMeeting(d project.MeetingDetails) (string, error) {
	if f.meetingErr != nil {
		return "", f.meetingErr
	}
	f.meetings = append(f.meetings, d)
	return "meeting_fake", nil
}

func newTestAssistant(client llm.Client, projects Projects) (*Assistant, *conversation.Manager) {
	history := conversation.NewManager(20)
	return New("Confidant", client, history, projects, 30, zerolog.Nop()), history
}

func TestRespondHappyPath(t *testing.T) {
	client := &fakeLLM{reply: "Use a layered storage design."}
	projects := &fakeProjects{context: "Recent Project Context (Last 30 days):\n\nMeetings:\n"}
	a, history := newTestAssistant(client, projects)

	got := a.Respond(context.Background(), "s1", "How should we store memories?")
	require.Equal(t, "Use a layered storage design.", got)

	// Both turns recorded, chronological.
	turns := history.Snapshot("s1")
	require.Len(t, turns, 2)
	require.Equal(t, "user", turns[0].Role)
	require.Equal(t, "assistant", turns[1].Role)

	// System prompt carries the role description and project context.
	require.Contains(t, client.systemPrompt, "Confidant project")
	require.Contains(t, client.systemPrompt, "Recent Project Context")

	// The exchange was logged as a meeting record.
	require.Len(t, projects.meetings, 1)
	require.Equal(t, []string{"How should we store memories?"}, projects.meetings[0].KeyDiscussions)
	require.Equal(t, []string{"Use a layered storage design...."}, projects.meetings[0].ActionItems)
}

func TestRespondLongReplyTruncatedInMeetingLog(t *testing.T) {
	long := strings.Repeat("a", 500)
	client := &fakeLLM{reply: long}
	projects := &fakeProjects{context: "ctx"}
	a, _ := newTestAssistant(client, projects)

	a.Respond(context.Background(), "s1", "q")
	require.Len(t, projects.meetings, 1)
	require.Equal(t, strings.Repeat("a", 200)+"...", projects.meetings[0].ActionItems[0])
}

func TestRespondFallsBackWhenContextFails(t *testing.T) {
	client := &fakeLLM{reply: "ok"}
	projects := &fakeProjects{contextErr: errors.New("disk on fire")}
	a, _ := newTestAssistant(client, projects)

	got := a.Respond(context.Background(), "s1", "hello")
	require.Equal(t, "ok", got)
	require.Contains(t, client.systemPrompt, "Default Project Context")
}

func TestRespondConvertsProviderErrorToText(t *testing.T) {
	client := &fakeLLM{err: errors.New("rate limited")}
	projects := &fakeProjects{context: "ctx"}
	a, history := newTestAssistant(client, projects)

	got := a.Respond(context.Background(), "s1", "hello")
	require.Contains(t, got, "An error occurred while processing your request")
	require.Contains(t, got, "rate limited")

	// The failed turn leaves only the user message in history and no
	// meeting record.
	require.Len(t, history.Snapshot("s1"), 1)
	require.Empty(t, projects.meetings)
}

func TestRespondSurvivesMeetingLogFailure(t *testing.T) {
	client := &fakeLLM{reply: "fine"}
	projects := &fakeProjects{context: "ctx", meetingErr: errors.New("no index for you")}
	a, history := newTestAssistant(client, projects)

	got := a.Respond(context.Background(), "s1", "hello")
	require.Equal(t, "fine", got)
	require.Len(t, history.Snapshot("s1"), 2)
}

func TestResetClearsSession(t *testing.T) {
	client := &fakeLLM{reply: "ok"}
	projects := &fakeProjects{context: "ctx"}
	a, history := newTestAssistant(client, projects)

	a.Respond(context.Background(), "s1", "hello")
	a.Reset("s1")
	require.Empty(t, history.Snapshot("s1"))
}
