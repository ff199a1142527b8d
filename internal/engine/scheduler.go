package engine

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/localflipper/internal/store"
	"github.com/donaldgifford/localflipper/pkg/logger"
)

const (
	searchJobName      = "search"
	staleRunThreshold  = 2 * time.Hour
	defaultLockTTLSlop = 5 * time.Minute
)

// Scheduler runs all saved searches on a fixed interval. A store-backed
// lock keeps replicas from running the same cycle twice.
type Scheduler struct {
	cron     *cron.Cron
	engine   *Engine
	store    store.Store
	interval time.Duration
	holder   string
	log      *slog.Logger
}

// NewScheduler creates a Scheduler that calls eng.RunAll every interval.
func NewScheduler(
	eng *Engine,
	s store.Store,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	holder, err := os.Hostname()
	if err != nil || holder == "" {
		holder = "localflipper"
	}

	sched := &Scheduler{
		cron:     cron.New(),
		engine:   eng,
		store:    s,
		interval: interval,
		holder:   holder,
		log:      logger.Component(log, "scheduler"),
	}

	if _, err := sched.cron.AddFunc("@every "+interval.String(), sched.runSearches); err != nil {
		return nil, err
	}

	return sched, nil
}

// Start recovers runs orphaned by a previous process, then begins running
// scheduled tasks.
func (s *Scheduler) Start(ctx context.Context) {
	n, err := s.store.RecoverStaleSearchRuns(ctx, staleRunThreshold)
	if err != nil {
		s.log.Error("recovering stale search runs failed", "error", err)
	} else if n > 0 {
		s.log.Warn("recovered stale search runs", "count", n)
	}

	s.log.Info("scheduler started", "interval", s.interval)
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// runSearches is the cron job body. It skips the cycle when another holder
// owns the lock.
func (s *Scheduler) runSearches() {
	ctx := context.Background()

	ok, err := s.store.AcquireSchedulerLock(ctx, searchJobName, s.holder, s.interval+defaultLockTTLSlop)
	if err != nil {
		s.log.Error("acquiring scheduler lock failed", "error", err)
		return
	}
	if !ok {
		s.log.Info("search cycle skipped, lock held elsewhere")
		return
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(ctx, searchJobName, s.holder); err != nil {
			s.log.Error("releasing scheduler lock failed", "error", err)
		}
	}()

	s.log.Info("scheduled search cycle starting")
	summaries, err := s.engine.RunAll(ctx)
	if err != nil {
		s.log.Error("scheduled search cycle had failures", "error", err)
	}
	s.log.Info("scheduled search cycle finished", "searches", len(summaries))
}
