package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dev-assistant/internal/logger"
	"dev-assistant/internal/project"
)

func summaryCmd() *cobra.Command {
	var days int
	var category string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the recent project summary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := newProjectManager(logger.New("project"))
			if err != nil {
				return err
			}
			var summary *project.Summary
			if category != "" {
				summary, err = projects.CategorySummary(category)
			} else {
				summary, err = projects.GenerateSummary(days)
			}
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "Trailing window in days")
	cmd.Flags().StringVar(&category, "category", "", "Filter records mentioning a category")
	return cmd
}

func reportCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a project report snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := newProjectManager(logger.New("project"))
			if err != nil {
				return err
			}
			path, err := projects.ExportReport(days)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, path)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "Trailing window in days")
	return cmd
}
