package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatContextEmptySummaryKeepsAllLabels(t *testing.T) {
	s := &Summary{
		ProjectName:        "Confidant",
		SummaryPeriod:      "Last 30 days",
		Meetings:           []Meeting{},
		RequirementChanges: []RequirementChange{},
		Milestones:         []Milestone{},
		Days:               30,
	}

	out := FormatContext(s)
	require.Contains(t, out, "Recent Project Context (Last 30 days):")
	require.Contains(t, out, "Meetings:\n")
	require.Contains(t, out, "Requirement Changes:\n")
	require.Contains(t, out, "Milestones:\n")
	require.NotContains(t, out, "- ")
}

func TestFormatContextRendersOneLinePerRecord(t *testing.T) {
	s := &Summary{
		Days: 7,
		Meetings: []Meeting{
			{Date: "2026-08-01T10:00:00Z", KeyDiscussions: []string{"storage design", "privacy"}},
		},
		RequirementChanges: []RequirementChange{
			{Date: "2026-08-02T10:00:00Z", Changes: []string{"offline mode"}},
		},
		Milestones: []Milestone{
			{Name: "Initial Architecture Design", Status: "Completed"},
		},
	}

	out := FormatContext(s)
	require.Contains(t, out, "- 2026-08-01T10:00:00Z: storage design, privacy")
	require.Contains(t, out, "- 2026-08-02T10:00:00Z: offline mode")
	require.Contains(t, out, "- Initial Architecture Design: Completed")

	// Header first, then sections in fixed order.
	require.True(t, strings.Index(out, "Meetings:") < strings.Index(out, "Requirement Changes:"))
	require.True(t, strings.Index(out, "Requirement Changes:") < strings.Index(out, "Milestones:"))
}
