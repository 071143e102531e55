package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dev-assistant/internal/project"
)

const defaultSessionID = "default"

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "Invalid JSON")
		return
	}
	if req.Message == "" {
		s.writeBadRequest(w, "message is required")
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}
	reply := s.assistant.Respond(r.Context(), req.SessionID, req.Message)
	s.writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	// an empty body resets the default session
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}
	s.assistant.Reset(req.SessionID)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeBadRequest(w, "days must be a positive integer")
			return
		}
		days = n
	}
	summary, err := s.projects.GenerateSummary(days)
	if err != nil {
		s.writeInternalError(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleLogMeeting(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Participants   []string `json:"participants"`
		KeyDiscussions []string `json:"key_discussions"`
		ActionItems    []string `json:"action_items"`
		Decisions      []string `json:"decisions"`
		NextSteps      []string `json:"next_steps"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "Invalid JSON")
		return
	}
	id, err := s.projects.LogMeeting(project.MeetingDetails{
		Participants:   req.Participants,
		KeyDiscussions: req.KeyDiscussions,
		ActionItems:    req.ActionItems,
		Decisions:      req.Decisions,
		NextSteps:      req.NextSteps,
	})
	if err != nil {
		s.writeInternalError(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleLogRequirement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category   string   `json:"category"`
		Changes    []string `json:"changes"`
		Rationale  string   `json:"rationale"`
		Impact     []string `json:"impact"`
		ProposedBy string   `json:"proposed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "Invalid JSON")
		return
	}
	id, err := s.projects.LogRequirementChange(project.RequirementDetails{
		Category:   req.Category,
		Changes:    req.Changes,
		Rationale:  req.Rationale,
		Impact:     req.Impact,
		ProposedBy: req.ProposedBy,
	})
	if err != nil {
		s.writeInternalError(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleLogMilestone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string   `json:"name"`
		Description     string   `json:"description"`
		Status          string   `json:"status"`
		CompletionDate  string   `json:"completion_date"`
		KeyAchievements []string `json:"key_achievements"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w, "Invalid JSON")
		return
	}
	id, err := s.projects.LogMilestone(project.MilestoneDetails{
		Name:            req.Name,
		Description:     req.Description,
		Status:          req.Status,
		CompletionDate:  req.CompletionDate,
		KeyAchievements: req.KeyAchievements,
	})
	if err != nil {
		s.writeInternalError(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Days int `json:"days"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Days <= 0 {
		req.Days = 30
	}
	path, err := s.projects.ExportReport(req.Days)
	if err != nil {
		s.writeInternalError(w, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"path": path})
}
