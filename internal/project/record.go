package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies one of the three record categories.
type Kind string

const (
	KindMeeting     Kind = "meeting"
	KindRequirement Kind = "requirement"
	KindMilestone   Kind = "milestone"
)

// Kinds lists every record category in scan order.
var Kinds = []Kind{KindMeeting, KindRequirement, KindMilestone}

const (
	timestampLayout = "20060102_150405"
)

// Meeting is an immutable log of one project meeting.
type Meeting struct {
	ID             string   `json:"id"`
	Timestamp      string   `json:"timestamp"`
	Date           string   `json:"date"`
	Participants   []string `json:"participants"`
	KeyDiscussions []string `json:"key_discussions"`
	ActionItems    []string `json:"action_items"`
	Decisions      []string `json:"decisions"`
	NextSteps      []string `json:"next_steps"`
}

// RequirementChange is an immutable log of one requirements change.
type RequirementChange struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"`
	Date       string   `json:"date"`
	Category   string   `json:"category"`
	Changes    []string `json:"changes"`
	Rationale  string   `json:"rationale"`
	Impact     []string `json:"impact"`
	ProposedBy string   `json:"proposed_by"`
}

// Milestone is an immutable log of one project milestone.
type Milestone struct {
	ID              string   `json:"id"`
	Timestamp       string   `json:"timestamp"`
	Date            string   `json:"date"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Status          string   `json:"status"`
	CompletionDate  string   `json:"completion_date,omitempty"`
	KeyAchievements []string `json:"key_achievements"`
}

// MeetingDetails carries caller-supplied meeting fields. Missing fields
// fall back to empty lists, never an error.
type MeetingDetails struct {
	Participants   []string
	KeyDiscussions []string
	ActionItems    []string
	Decisions      []string
	NextSteps      []string
}

// RequirementDetails carries caller-supplied requirement-change fields.
type RequirementDetails struct {
	Category   string
	Changes    []string
	Rationale  string
	Impact     []string
	ProposedBy string
}

// MilestoneDetails carries caller-supplied milestone fields.
type MilestoneDetails struct {
	Name            string
	Description     string
	Status          string
	CompletionDate  string
	KeyAchievements []string
}

// newRecordID builds a globally unique id of the form
// <kind>_<YYYYMMDD_HHMMSS>_<8 hex chars>. Uniqueness relies on
// timestamp plus random suffix, which is plenty for this access pattern.
func newRecordID(kind Kind, now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%s_%x", kind, now.Format(timestampLayout), u[:4])
}

func newMeeting(d MeetingDetails, now time.Time) Meeting {
	return Meeting{
		ID:             newRecordID(KindMeeting, now),
		Timestamp:      now.Format(timestampLayout),
		Date:           now.Format(time.RFC3339),
		Participants:   orEmpty(d.Participants),
		KeyDiscussions: orEmpty(d.KeyDiscussions),
		ActionItems:    orEmpty(d.ActionItems),
		Decisions:      orEmpty(d.Decisions),
		NextSteps:      orEmpty(d.NextSteps),
	}
}

func newRequirementChange(d RequirementDetails, now time.Time) RequirementChange {
	r := RequirementChange{
		ID:         newRecordID(KindRequirement, now),
		Timestamp:  now.Format(timestampLayout),
		Date:       now.Format(time.RFC3339),
		Category:   d.Category,
		Changes:    orEmpty(d.Changes),
		Rationale:  d.Rationale,
		Impact:     orEmpty(d.Impact),
		ProposedBy: d.ProposedBy,
	}
	if r.Category == "" {
		r.Category = "General"
	}
	if r.ProposedBy == "" {
		r.ProposedBy = "Unknown"
	}
	return r
}

func newMilestone(d MilestoneDetails, now time.Time) Milestone {
	m := Milestone{
		ID:              newRecordID(KindMilestone, now),
		Timestamp:       now.Format(timestampLayout),
		Date:            now.Format(time.RFC3339),
		Name:            d.Name,
		Description:     d.Description,
		Status:          d.Status,
		CompletionDate:  d.CompletionDate,
		KeyAchievements: orEmpty(d.KeyAchievements),
	}
	if m.Name == "" {
		m.Name = "Unnamed Milestone"
	}
	if m.Status == "" {
		m.Status = "Pending"
	}
	return m
}

// orEmpty keeps list fields serializing as [] instead of null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
