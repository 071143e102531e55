package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dev-assistant/internal/logger"
	"dev-assistant/internal/scheduler"
	"dev-assistant/internal/web"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web chat front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New("serve")

			projects, err := newProjectManager(logger.New("project"))
			if err != nil {
				return err
			}
			a, err := newAssistant(projects, logger.New("assistant"))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.DailyReport {
				sched := scheduler.New(logger.New("scheduler"))
				sched.SetExportFunc(func(ctx context.Context) (string, error) {
					return projects.ExportReport(cfg.ContextWindowDays)
				})
				if err := sched.Start(); err != nil {
					return err
				}
				defer sched.Stop()
			}

			srv := web.NewServer(a, projects, log)
			return srv.Start(ctx, cfg.ListenAddr)
		},
	}
}
