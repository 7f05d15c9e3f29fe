package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the monitoring engine on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that triggers a monitoring run every
// checkInterval.
func NewScheduler(eng *Engine, checkInterval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+checkInterval.String(), s.runOnce); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled monitoring runs.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()
	s.log.Info("scheduled run starting")
	if _, err := s.engine.Run(ctx); err != nil {
		s.log.Error("scheduled run failed", "error", err)
	}
}
