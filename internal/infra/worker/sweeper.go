package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweepable drops entries that went stale before now and reports how many.
type Sweepable interface {
	Sweep(now time.Time) int
}

type Target struct {
	Name string
	Sweepable
}

// SweepWorker periodically expires idle sessions and rate-limit buckets.
type SweepWorker struct {
	targets      []Target
	tickInterval time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

func NewSweepWorker(interval time.Duration, logger *zap.Logger, targets ...Target) *SweepWorker {
	return &SweepWorker{
		targets:      targets,
		tickInterval: interval,
		logger:       logger,
		now:          time.Now,
	}
}

// Start blocks until ctx is cancelled.
func (w *SweepWorker) Start(ctx context.Context) {
	w.logger.Info("sweep worker started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("sweep worker stopped")
			return
		case <-ticker.C:
			w.SweepOnce()
		}
	}
}

func (w *SweepWorker) SweepOnce() int {
	now := w.now()
	total := 0
	for _, t := range w.targets {
		removed := t.Sweep(now)
		if removed > 0 {
			w.logger.Debug("swept stale entries", zap.String("target", t.Name), zap.Int("removed", removed))
		}
		total += removed
	}
	return total
}
