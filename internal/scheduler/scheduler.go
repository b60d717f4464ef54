package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// StatsReconciler recomputes derived event counters from the participant
// table, returning how many events were refreshed.
type StatsReconciler interface {
	ReconcileStats(ctx context.Context) (int64, error)
}

// Scheduler periodically reconciles the stats of active events. Counter
// updates normally ride along with each mutation; this loop repairs the ones
// a crashed or cancelled async recompute missed.
type Scheduler struct {
	reconciler StatsReconciler
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler StatsReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	refreshed, err := s.reconciler.ReconcileStats(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile event stats",
			logger.String("error", err.Error()),
		)
		return
	}

	if refreshed > 0 {
		s.logger.Info("event stats reconciled",
			logger.Int64("events", refreshed),
		)
	}
}
