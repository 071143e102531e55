package web

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSON(w, statusCode, errorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	})
}

func (s *Server) writeBadRequest(w http.ResponseWriter, message string) {
	s.writeError(w, http.StatusBadRequest, message)
}

func (s *Server) writeInternalError(w http.ResponseWriter, message string) {
	s.writeError(w, http.StatusInternalServerError, message)
}
