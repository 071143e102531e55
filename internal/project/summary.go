package project

import (
	"encoding/json"
	"strings"
)

// Summary is the time-windowed aggregation of records used to build LLM
// context. It is computed on demand and only ever persisted as an
// exported report snapshot.
type Summary struct {
	ProjectName        string              `json:"project_name"`
	SummaryPeriod      string              `json:"summary_period"`
	Meetings           []Meeting           `json:"meetings"`
	RequirementChanges []RequirementChange `json:"requirement_changes"`
	Milestones         []Milestone         `json:"milestones"`

	// Days is the trailing window the summary covers.
	Days int `json:"-"`
}

// CategoryFilter returns the subset of each sequence whose serialized
// form contains category as a case-insensitive substring. The match is
// deliberately coarse and unstructured; do not upgrade it to per-field
// matching, that changes observable behavior.
func CategoryFilter(s *Summary, category string) *Summary {
	needle := strings.ToLower(category)
	out := &Summary{
		ProjectName:        s.ProjectName,
		SummaryPeriod:      s.SummaryPeriod,
		Meetings:           []Meeting{},
		RequirementChanges: []RequirementChange{},
		Milestones:         []Milestone{},
		Days:               s.Days,
	}
	for _, m := range s.Meetings {
		if serializedContains(m, needle) {
			out.Meetings = append(out.Meetings, m)
		}
	}
	for _, r := range s.RequirementChanges {
		if serializedContains(r, needle) {
			out.RequirementChanges = append(out.RequirementChanges, r)
		}
	}
	for _, ms := range s.Milestones {
		if serializedContains(ms, needle) {
			out.Milestones = append(out.Milestones, ms)
		}
	}
	return out
}

func serializedContains(record any, lowerNeedle string) bool {
	data, err := json.Marshal(record)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), lowerNeedle)
}
