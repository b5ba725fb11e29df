// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

// SyncObserver receives the outcome of every automatic round.
type SyncObserver func(result models.SyncResult, err error)

// syncWorker runs automatic sync rounds on a ticker. Every round asks for
// remote changes and is throttled by half the interval: a manual round
// shortly before a tick makes that tick a no-op, while a round finishing
// after its own network call never throttles the next tick.
type syncWorker struct {
	coordinator     service.SyncCoordinator
	interval        time.Duration
	minimumInterval time.Duration
	observer    SyncObserver
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a worker that calls coordinator.PerformSync once on
// start and then every interval. If interval is zero or negative it defaults
// to 5 minutes. observer may be nil.
func NewSyncWorker(coordinator service.SyncCoordinator, interval time.Duration, observer SyncObserver, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &syncWorker{
		coordinator:     coordinator,
		interval:        interval,
		minimumInterval: interval / 2,
		observer:        observer,
		logger:          logger,
	}
}

// Run implements Worker. A previously running loop is stopped first.
func (w *syncWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.syncOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.syncOnce(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. Safe to call when the worker is not running.
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *syncWorker) syncOnce(ctx context.Context) {
	result, err := w.coordinator.PerformSync(ctx, w.minimumInterval, true)
	if ctx.Err() != nil {
		return
	}

	switch {
	case err != nil:
		w.logger.Err(err).Str("func", "syncWorker.syncOnce").Msg("automatic sync rejected")
	case result.Outcome == models.SyncFailed:
		w.logger.Warn().Err(result.Err).Str("func", "syncWorker.syncOnce").Msg("automatic sync failed, will retry")
	}

	if w.observer != nil {
		w.observer(result, err)
	}
}
