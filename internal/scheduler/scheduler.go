package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler exports a daily project report on a fixed cron schedule.
type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	exportFunc func(ctx context.Context) (string, error)
	log        zerolog.Logger
}

func New(log zerolog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
		log:    log,
	}
}

// SetExportFunc sets the report export callback. It returns the path of
// the written report.
func (s *Scheduler) SetExportFunc(f func(ctx context.Context) (string, error)) {
	s.exportFunc = f
}

// Start registers the daily job at 21:00 UTC and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.exportFunc == nil {
		s.log.Warn().Msg("export function not set, scheduler will not generate reports")
		return nil
	}

	_, err := s.cron.AddFunc("0 21 * * *", func() {
		path, err := s.exportFunc(s.ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("daily report export failed")
			return
		}
		s.log.Info().Str("path", path).Msg("daily report exported")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info().Msg("scheduler started, daily reports at 21:00 UTC")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
