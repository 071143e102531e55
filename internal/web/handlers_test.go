package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"dev-assistant/internal/assistant"
	"dev-assistant/internal/conversation"
	"dev-assistant/internal/llm"
	"dev-assistant/internal/project"
)

type stubLLM struct{ reply string }

func (s *stubLLM) Generate(_ context.Context, _ string, _ []llm.Message) (llm.Response, error) {
	return llm.Response{Content: s.reply, Model: "stub"}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := project.NewFileStore(t.TempDir(), "Confidant", zerolog.Nop())
	projects, err := project.NewManager("Confidant", store, zerolog.Nop())
	require.NoError(t, err)

	history := conversation.NewManager(20)
	a := assistant.New("Confidant", &stubLLM{reply: "hello from the assistant"}, history, projects, 30, zerolog.Nop())
	return NewServer(a, projects, zerolog.Nop())
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rr := postJSON(t, srv.Handler(), "/api/chat", map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "hello from the assistant", resp["response"])
}

func TestChatRequiresMessage(t *testing.T) {
	srv := newTestServer(t)
	rr := postJSON(t, srv.Handler(), "/api/chat", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogMeetingEndpointReturnsID(t *testing.T) {
	srv := newTestServer(t)
	rr := postJSON(t, srv.Handler(), "/api/meetings", map[string]any{
		"participants":    []string{"Project Lead"},
		"key_discussions": []string{"roadmap"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Contains(t, resp["id"], "meeting_")
}

func TestSummaryEndpoint(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/summary?days=30", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var s project.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	require.Equal(t, "Confidant", s.ProjectName)
	// the seeded starter records are visible through the API
	require.NotEmpty(t, s.Meetings)
}

func TestSummaryRejectsBadDays(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/summary?days=banana", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResetEndpoint(t *testing.T) {
	srv := newTestServer(t)
	postJSON(t, srv.Handler(), "/api/chat", map[string]string{"message": "hi"})
	rr := postJSON(t, srv.Handler(), "/api/reset", map[string]string{})
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestExportReportEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rr := postJSON(t, srv.Handler(), "/api/report", map[string]int{"days": 30})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Contains(t, resp["path"], "project_report_")
}
