package project

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Manager is the project-context persistence and summarization layer:
// it appends immutable records through a Store, folds recent ones into
// summaries and renders the context block injected into LLM prompts.
type Manager struct {
	projectName string
	store       Store
	log         zerolog.Logger
}

// NewManager initializes the store layout and seeds illustrative
// starter records when the project is brand new, so a fresh project has
// non-empty context immediately. Seeding failures are logged and
// swallowed.
func NewManager(projectName string, store Store, log zerolog.Logger) (*Manager, error) {
	m := &Manager{projectName: projectName, store: store, log: log}
	if err := store.Initialize(); err != nil {
		return nil, err
	}
	m.bootstrapIfEmpty()
	return m, nil
}

func (m *Manager) LogMeeting(d MeetingDetails) (string, error) {
	rec := newMeeting(d, time.Now())
	if err := m.store.Append(KindMeeting, rec.ID, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (m *Manager) LogRequirementChange(d RequirementDetails) (string, error) {
	rec := newRequirementChange(d, time.Now())
	if err := m.store.Append(KindRequirement, rec.ID, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (m *Manager) LogMilestone(d MilestoneDetails) (string, error) {
	rec := newMilestone(d, time.Now())
	if err := m.store.Append(KindMilestone, rec.ID, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GenerateSummary scans every category and returns the records whose
// date falls strictly after now minus the window. Ordering within each
// sequence is whatever the backend enumerates; callers that need
// chronological order must sort explicitly.
func (m *Manager) GenerateSummary(days int) (*Summary, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	summary := &Summary{
		ProjectName:        m.projectName,
		SummaryPeriod:      fmt.Sprintf("Last %d days", days),
		Meetings:           []Meeting{},
		RequirementChanges: []RequirementChange{},
		Milestones:         []Milestone{},
		Days:               days,
	}

	raws, err := m.store.Scan(KindMeeting)
	if err != nil {
		return nil, err
	}
	for _, raw := range raws {
		var rec Meeting
		if !m.parseRecent(raw, &rec, func() string { return rec.Date }, cutoff, KindMeeting) {
			continue
		}
		summary.Meetings = append(summary.Meetings, rec)
	}

	raws, err = m.store.Scan(KindRequirement)
	if err != nil {
		return nil, err
	}
	for _, raw := range raws {
		var rec RequirementChange
		if !m.parseRecent(raw, &rec, func() string { return rec.Date }, cutoff, KindRequirement) {
			continue
		}
		summary.RequirementChanges = append(summary.RequirementChanges, rec)
	}

	raws, err = m.store.Scan(KindMilestone)
	if err != nil {
		return nil, err
	}
	for _, raw := range raws {
		var rec Milestone
		if !m.parseRecent(raw, &rec, func() string { return rec.Date }, cutoff, KindMilestone) {
			continue
		}
		summary.Milestones = append(summary.Milestones, rec)
	}

	return summary, nil
}

// parseRecent decodes one raw record and applies the strict cutoff.
// A record dated exactly at the cutoff instant is excluded. Records
// that fail to parse are logged as corrupt and skipped; the scan never
// aborts because of one bad file.
func (m *Manager) parseRecent(raw json.RawMessage, dst any, date func() string, cutoff time.Time, kind Kind) bool {
	if err := json.Unmarshal(raw, dst); err != nil {
		m.log.Warn().Err(fmt.Errorf("%w: %w", ErrCorruptRecord, err)).
			Str("kind", string(kind)).
			Msg("skipping unparsable record")
		return false
	}
	ts, err := time.Parse(time.RFC3339, date())
	if err != nil {
		m.log.Warn().Err(fmt.Errorf("%w: %w", ErrCorruptRecord, err)).
			Str("kind", string(kind)).
			Msg("skipping record with unparsable date")
		return false
	}
	return ts.After(cutoff)
}

// RecentContext renders the windowed summary as a prompt-ready text
// block.
func (m *Manager) RecentContext(days int) (string, error) {
	summary, err := m.GenerateSummary(days)
	if err != nil {
		return "", err
	}
	return FormatContext(summary), nil
}

// CategorySummary generates a 30-day summary filtered down to records
// whose serialized form mentions the category.
func (m *Manager) CategorySummary(category string) (*Summary, error) {
	summary, err := m.GenerateSummary(30)
	if err != nil {
		return nil, err
	}
	return CategoryFilter(summary, category), nil
}

// ExportReport writes the windowed summary to a timestamped report file
// and returns its path.
func (m *Manager) ExportReport(days int) (string, error) {
	summary, err := m.GenerateSummary(days)
	if err != nil {
		return "", err
	}
	return m.store.WriteReport(summary)
}

// Metadata exposes the advisory index.
func (m *Manager) Metadata() (*Metadata, error) {
	return m.store.Metadata()
}

func (m *Manager) bootstrapIfEmpty() {
	empty, err := m.store.Empty()
	if err != nil {
		m.log.Error().Err(err).Msg("could not check for existing records, skipping seed")
		return
	}
	if !empty {
		return
	}

	if _, err := m.LogMeeting(MeetingDetails{
		Participants: []string{"Project Lead", "AI Assistant"},
		KeyDiscussions: []string{
			"Confidant Project Memory Storage Architecture",
			"Privacy and Security Mechanisms",
		},
		ActionItems: []string{
			"Design local encryption strategy",
			"Create security access control specification",
		},
		Decisions: []string{
			"Use end-to-end local encryption",
			"Implement multi-tier access control",
		},
	}); err != nil {
		m.log.Error().Err(err).Msg("failed to seed initial meeting")
	}

	if _, err := m.LogRequirementChange(RequirementDetails{
		Category: "Technical Requirements",
		Changes: []string{
			"Added offline functionality specification",
			"Enhanced local data privacy requirements",
		},
		Rationale: "Ensure complete user data protection and system independence",
		Impact: []string{
			"Requires additional local processing capabilities",
			"Increases system security",
		},
	}); err != nil {
		m.log.Error().Err(err).Msg("failed to seed initial requirement change")
	}

	if _, err := m.LogMilestone(MilestoneDetails{
		Name:        "Initial Architecture Design",
		Description: "Complete high-level system design for Confidant project",
		Status:      "Completed",
		KeyAchievements: []string{
			"Defined memory storage approach",
			"Outlined security mechanisms",
			"Created initial system architecture concept",
		},
	}); err != nil {
		m.log.Error().Err(err).Msg("failed to seed initial milestone")
	}
}
