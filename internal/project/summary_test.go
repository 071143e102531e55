package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCategoryFilterMatchesSerializedForm(t *testing.T) {
	now := time.Now().Format(time.RFC3339)
	s := &Summary{
		ProjectName:   "Confidant",
		SummaryPeriod: "Last 30 days",
		Meetings: []Meeting{
			{ID: "meeting_1", Date: now, KeyDiscussions: []string{"standup"}},
		},
		RequirementChanges: []RequirementChange{
			{ID: "requirement_1", Date: now, Category: "Security", Changes: []string{"tighten access"}, Rationale: "Add end-to-end Encryption for stored memories"},
			{ID: "requirement_2", Date: now, Category: "UX", Changes: []string{"new palette"}, Rationale: "branding"},
		},
		Milestones: []Milestone{
			{ID: "milestone_1", Date: now, Name: "Design", Status: "Completed"},
		},
		Days: 30,
	}

	// Case-insensitive substring over the serialized record: the match
	// in rationale is enough, unrelated records are excluded.
	out := CategoryFilter(s, "encryption")
	require.Len(t, out.RequirementChanges, 1)
	require.Equal(t, "requirement_1", out.RequirementChanges[0].ID)
	require.Empty(t, out.Meetings)
	require.Empty(t, out.Milestones)
}

func TestCategoryFilterEmptyNeedleKeepsEverything(t *testing.T) {
	s := &Summary{
		Meetings:           []Meeting{{ID: "meeting_1"}},
		RequirementChanges: []RequirementChange{{ID: "requirement_1"}},
		Milestones:         []Milestone{{ID: "milestone_1"}},
	}
	out := CategoryFilter(s, "")
	require.Len(t, out.Meetings, 1)
	require.Len(t, out.RequirementChanges, 1)
	require.Len(t, out.Milestones, 1)
}
