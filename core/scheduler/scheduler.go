package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Config holds configuration for the sync run scheduler.
type Config struct {
	// Daily is the cron expression for the daily sync run.
	Daily string `mapstructure:"daily" default:"5 0 * * *"`
	// Weekly is the cron expression for the extra run just before the
	// weekly service, when the liturgy document tends to appear.
	Weekly string `mapstructure:"weekly" default:"30 9 * * 0"`
	// Timezone is the IANA timezone the cron expressions are evaluated in.
	Timezone string `mapstructure:"timezone" default:"Europe/Amsterdam"`
}

// Scheduler triggers the sync job immediately at startup and then on the
// two configured cron schedules, forever. The job itself is stateless and
// safe to invoke repeatedly.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
	job    func()
}

// New creates a scheduler for the given job.
func New(cfg Config, logger *zap.Logger, job func()) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	c := cron.New(cron.WithLocation(loc))

	for _, expr := range []string{cfg.Daily, cfg.Weekly} {
		if expr == "" {
			continue
		}
		if _, err := c.AddFunc(expr, job); err != nil {
			return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
		}
	}

	return &Scheduler{cron: c, logger: logger, job: job}, nil
}

// Start runs the job once immediately, then hands over to cron. The initial
// run is synchronous so startup failures surface in order in the logs.
func (s *Scheduler) Start() {
	s.logger.Info("Running initial sync")
	s.job()

	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("Sync scheduled", zap.Time("next", entry.Next))
	}
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
