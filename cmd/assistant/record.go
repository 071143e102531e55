package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dev-assistant/internal/logger"
	"dev-assistant/internal/project"
)

func logCmd() *cobra.Command {
	logRoot := &cobra.Command{Use: "log", Short: "Append project records"}

	var participants, discussions, actions, decisions, nextSteps []string
	meetingCmd := &cobra.Command{
		Use:   "meeting",
		Short: "Log a project meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := newProjectManager(logger.New("project"))
			if err != nil {
				return err
			}
			id, err := projects.LogMeeting(project.MeetingDetails{
				Participants:   participants,
				KeyDiscussions: discussions,
				ActionItems:    actions,
				Decisions:      decisions,
				NextSteps:      nextSteps,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, id)
			return nil
		},
	}
	meetingCmd.Flags().StringSliceVar(&participants, "participants", nil, "Meeting participants")
	meetingCmd.Flags().StringSliceVar(&discussions, "discussions", nil, "Key discussions")
	meetingCmd.Flags().StringSliceVar(&actions, "actions", nil, "Action items")
	meetingCmd.Flags().StringSliceVar(&decisions, "decisions", nil, "Decisions made")
	meetingCmd.Flags().StringSliceVar(&nextSteps, "next-steps", nil, "Next steps")
	logRoot.AddCommand(meetingCmd)

	var category, rationale, proposedBy string
	var changes, impact []string
	requirementCmd := &cobra.Command{
		Use:   "requirement",
		Short: "Log a requirement change",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := newProjectManager(logger.New("project"))
			if err != nil {
				return err
			}
			id, err := projects.LogRequirementChange(project.RequirementDetails{
				Category:   category,
				Changes:    changes,
				Rationale:  rationale,
				Impact:     impact,
				ProposedBy: proposedBy,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, id)
			return nil
		},
	}
	requirementCmd.Flags().StringVar(&category, "category", "", "Requirement category")
	requirementCmd.Flags().StringSliceVar(&changes, "changes", nil, "Requirement changes")
	requirementCmd.Flags().StringVar(&rationale, "rationale", "", "Rationale for the change")
	requirementCmd.Flags().StringSliceVar(&impact, "impact", nil, "Impact of the change")
	requirementCmd.Flags().StringVar(&proposedBy, "proposed-by", "", "Who proposed the change")
	logRoot.AddCommand(requirementCmd)

	var name, description, status, completionDate string
	var achievements []string
	milestoneCmd := &cobra.Command{
		Use:   "milestone",
		Short: "Log a project milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := newProjectManager(logger.New("project"))
			if err != nil {
				return err
			}
			id, err := projects.LogMilestone(project.MilestoneDetails{
				Name:            name,
				Description:     description,
				Status:          status,
				CompletionDate:  completionDate,
				KeyAchievements: achievements,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, id)
			return nil
		},
	}
	milestoneCmd.Flags().StringVar(&name, "name", "", "Milestone name")
	milestoneCmd.Flags().StringVar(&description, "description", "", "Milestone description")
	milestoneCmd.Flags().StringVar(&status, "status", "", "Milestone status")
	milestoneCmd.Flags().StringVar(&completionDate, "completion-date", "", "Completion date")
	milestoneCmd.Flags().StringSliceVar(&achievements, "achievements", nil, "Key achievements")
	logRoot.AddCommand(milestoneCmd)

	return logRoot
}
