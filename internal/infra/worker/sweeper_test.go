package worker_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/infra/worker"
)

type countingTarget struct {
	calls   atomic.Int32
	removed int
}

func (c *countingTarget) Sweep(time.Time) int {
	c.calls.Add(1)
	return c.removed
}

func TestSweepOnceSumsTargets(t *testing.T) {
	sessions := &countingTarget{removed: 2}
	buckets := &countingTarget{removed: 3}

	w := worker.NewSweepWorker(time.Minute, zap.NewNop(),
		worker.Target{Name: "sessions", Sweepable: sessions},
		worker.Target{Name: "rate_limit", Sweepable: buckets},
	)

	assert.Equal(t, 5, w.SweepOnce())
	assert.Equal(t, int32(1), sessions.calls.Load())
	assert.Equal(t, int32(1), buckets.calls.Load())
}

// TestStartStopsOnCancel - the ticker goroutine exits with its context
func TestStartStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	target := &countingTarget{}
	w := worker.NewSweepWorker(5*time.Millisecond, zap.NewNop(), worker.Target{Name: "sessions", Sweepable: target})

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.Start(ctx)
	}()

	assert.Eventually(t, func() bool { return target.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	wg.Wait()
}
