package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"dev-assistant/internal/assistant"
	"dev-assistant/internal/project"
)

// Server is the HTTP front end: a minimal chat page plus a JSON API
// over the assistant and the project manager.
type Server struct {
	router    *mux.Router
	assistant *assistant.Assistant
	projects  *project.Manager
	log       zerolog.Logger
	http      *http.Server
}

func NewServer(a *assistant.Assistant, p *project.Manager, log zerolog.Logger) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		assistant: a,
		projects:  p,
		log:       log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/meetings", s.handleLogMeeting).Methods(http.MethodPost)
	api.HandleFunc("/requirements", s.handleLogRequirement).Methods(http.MethodPost)
	api.HandleFunc("/milestones", s.handleLogMilestone).Methods(http.MethodPost)
	api.HandleFunc("/report", s.handleExportReport).Methods(http.MethodPost)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start blocks serving HTTP until the context is canceled or the
// listener fails.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	s.log.Info().Str("addr", addr).Msg("web server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
