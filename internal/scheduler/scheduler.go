package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/config"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

// Syncer defines the periodic operations the scheduler drives.
type Syncer interface {
	SyncBatch(ctx context.Context, limit int) (*domain.BatchStats, error)
	Maintain(ctx context.Context) error
}

type Scheduler struct {
	syncer       Syncer
	interval     time.Duration
	reapInterval time.Duration
	batchLimit   int
	logger       *slog.Logger
}

func NewScheduler(syncer Syncer, cfg config.SyncConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:       syncer,
		interval:     cfg.Interval,
		reapInterval: cfg.ReapInterval,
		batchLimit:   cfg.BatchLimit,
		logger:       logger.With("component", "scheduler"),
	}
}

// Start runs a catch-up batch every interval and maintenance every reap
// interval until ctx is done. Maintenance runs on its own loop so a long
// batch does not delay lease reaping.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "reap_interval", s.reapInterval)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.loop(ctx, s.reapInterval, s.runMaintenance)
	}()

	s.runSync(ctx)
	s.loop(ctx, s.interval, s.runSync)

	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, every time.Duration, fn func(context.Context)) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if _, err := s.syncer.SyncBatch(syncCtx, s.batchLimit); err != nil {
		s.logger.Error("batch sync failed", "error", err)
	}
}

func (s *Scheduler) runMaintenance(ctx context.Context) {
	if err := s.syncer.Maintain(ctx); err != nil {
		s.logger.Error("maintenance failed", "error", err)
	}
}
