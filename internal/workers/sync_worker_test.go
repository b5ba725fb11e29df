package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyCoordinator counts PerformSync calls and records their arguments.
type spyCoordinator struct {
	calls atomic.Int64

	mu       sync.Mutex
	interval time.Duration
	remote   bool

	result models.SyncResult
	err    error
}

func (s *spyCoordinator) PerformSync(_ context.Context, minimumInterval time.Duration, wantRemoteChanges bool) (models.SyncResult, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.interval = minimumInterval
	s.remote = wantRemoteChanges
	s.mu.Unlock()
	return s.result, s.err
}

var _ service.SyncCoordinator = (*spyCoordinator)(nil)

// ── Run / Stop ───────────────────────────────────────────────────────────────

// TestSyncWorker_Run_SyncsImmediatelyAndOnTick verifies the first round runs
// on start and later ones on every tick.
func TestSyncWorker_Run_SyncsImmediatelyAndOnTick(t *testing.T) {
	spy := &spyCoordinator{}
	w := NewSyncWorker(spy, 10*time.Millisecond, nil, logger.Nop())

	w.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "PerformSync should run several times, got %d", got)
}

func TestSyncWorker_Run_PassesHalfIntervalAndWantsRemote(t *testing.T) {
	spy := &spyCoordinator{}
	w := NewSyncWorker(spy, time.Hour, nil, logger.Nop())

	w.Run(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	w.Stop()

	spy.mu.Lock()
	defer spy.mu.Unlock()
	assert.Equal(t, 30*time.Minute, spy.interval)
	assert.True(t, spy.remote)
}

// throttlingCoordinator applies the minimum interval the way the real
// coordinator does: last success is recorded after the round's latency.
type throttlingCoordinator struct {
	latency time.Duration

	mu          sync.Mutex
	lastSuccess time.Time
	completed   int
	throttled   int
}

func (c *throttlingCoordinator) PerformSync(_ context.Context, minimumInterval time.Duration, _ bool) (models.SyncResult, error) {
	c.mu.Lock()
	if !c.lastSuccess.IsZero() && time.Since(c.lastSuccess) < minimumInterval {
		c.throttled++
		c.mu.Unlock()
		return models.SyncResult{Outcome: models.SyncSkippedThrottled}, nil
	}
	c.mu.Unlock()

	time.Sleep(c.latency)

	c.mu.Lock()
	c.lastSuccess = time.Now()
	c.completed++
	c.mu.Unlock()
	return models.SyncResult{Outcome: models.SyncCompleted}, nil
}

func (c *throttlingCoordinator) counts() (completed, throttled int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed, c.throttled
}

// TestSyncWorker_ConsecutiveTicksAllSync verifies a slow round does not make
// the following tick look throttled.
func TestSyncWorker_ConsecutiveTicksAllSync(t *testing.T) {
	coordinator := &throttlingCoordinator{latency: 5 * time.Millisecond}
	w := NewSyncWorker(coordinator, 40*time.Millisecond, nil, logger.Nop())

	w.Run(context.Background())
	require.Eventually(t, func() bool {
		completed, _ := coordinator.counts()
		return completed >= 4
	}, 2*time.Second, 5*time.Millisecond)
	w.Stop()

	_, throttled := coordinator.counts()
	assert.Zero(t, throttled)
}

func TestSyncWorker_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyCoordinator{}
	w := NewSyncWorker(spy, 10*time.Millisecond, nil, logger.Nop())

	w.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no rounds after Stop")
}

func TestSyncWorker_Stop_BeforeRun_NoPanic(t *testing.T) {
	w := NewSyncWorker(&spyCoordinator{}, time.Second, nil, logger.Nop())

	assert.NotPanics(t, func() { w.Stop() })
	assert.NotPanics(t, func() { w.Stop() })
}

func TestSyncWorker_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		w := NewSyncWorker(&spyCoordinator{}, interval, nil, logger.Nop()).(*syncWorker)
		assert.Equal(t, defaultSyncInterval, w.interval)
		assert.Equal(t, defaultSyncInterval/2, w.minimumInterval)
	}
}

func TestSyncWorker_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyCoordinator{}
	w := NewSyncWorker(spy, 10*time.Millisecond, nil, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	w.Run(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

// TestSyncWorker_FailedRounds_KeepRunning verifies failures do not stop the
// loop and reach the observer.
func TestSyncWorker_FailedRounds_KeepRunning(t *testing.T) {
	spy := &spyCoordinator{result: models.SyncResult{Outcome: models.SyncFailed, Err: service.ErrSyncTransient}}

	var observed atomic.Int64
	observer := func(result models.SyncResult, err error) {
		if result.Outcome == models.SyncFailed && err == nil {
			observed.Add(1)
		}
	}

	w := NewSyncWorker(spy, 10*time.Millisecond, observer, logger.Nop())
	w.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.GreaterOrEqual(t, observed.Load(), int64(3))
}

func TestSyncWorker_RejectedRounds_KeepRunning(t *testing.T) {
	spy := &spyCoordinator{err: service.ErrSyncUnauthenticated}
	w := NewSyncWorker(spy, 10*time.Millisecond, nil, logger.Nop())

	w.Run(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestSyncWorker_Restart_StopsPrevious(t *testing.T) {
	spy := &spyCoordinator{}
	w := NewSyncWorker(spy, 10*time.Millisecond, nil, logger.Nop())

	w.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	require.Greater(t, callsBefore, int64(0))

	w.Run(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "second Run keeps syncing")
}
