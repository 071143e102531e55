package project

import (
	"fmt"
	"strings"
)

// FormatContext renders a summary into the prompt-ready text block that
// gets embedded into the LLM system prompt. Empty sections keep their
// label with no body lines.
func FormatContext(s *Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recent Project Context (Last %d days):\n\n", s.Days)

	b.WriteString("Meetings:\n")
	for _, m := range s.Meetings {
		date := m.Date
		if date == "" {
			date = "Unknown Date"
		}
		fmt.Fprintf(&b, "- %s: %s\n", date, strings.Join(m.KeyDiscussions, ", "))
	}

	b.WriteString("\nRequirement Changes:\n")
	for _, r := range s.RequirementChanges {
		date := r.Date
		if date == "" {
			date = "Unknown Date"
		}
		fmt.Fprintf(&b, "- %s: %s\n", date, strings.Join(r.Changes, ", "))
	}

	b.WriteString("\nMilestones:\n")
	for _, ms := range s.Milestones {
		name := ms.Name
		if name == "" {
			name = "Unnamed Milestone"
		}
		status := ms.Status
		if status == "" {
			status = "No status"
		}
		fmt.Fprintf(&b, "- %s: %s\n", name, status)
	}

	return b.String()
}
