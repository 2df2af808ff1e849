package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/logger"
)

// Scheduler runs the aggregate rebuild on a cron spec
type Scheduler struct {
	cron       *cron.Cron
	aggregator Aggregator
}

// NewScheduler creates a scheduler that triggers a rebuild on the given
// six-field cron spec (seconds included, e.g. "0 0 2 * * *" for 2AM daily)
func NewScheduler(aggregator Aggregator, cronSpec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:       cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		aggregator: aggregator,
	}

	_, err := s.cron.AddFunc(cronSpec, func() {
		s.run(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", cronSpec, err)
	}

	return s, nil
}

// Start begins firing scheduled rebuilds
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Aggregate scheduler started")
}

// Stop halts the schedule and waits for an in-flight run to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Info("Aggregate scheduler stopped")
}

// run executes one scheduled rebuild. An overlapping run is expected when a
// manual rebuild is in flight, so it is logged and skipped rather than
// treated as a failure.
func (s *Scheduler) run(ctx context.Context) {
	if _, err := s.aggregator.Rebuild(ctx); err != nil {
		if errors.Is(err, domain.ErrRebuildInProgress) {
			logger.WarnCtx(ctx, "Scheduled rebuild skipped, previous run still in flight")
			return
		}
		logger.ErrorCtx(ctx, fmt.Errorf("scheduled rebuild failed: %w", err))
	}
}
