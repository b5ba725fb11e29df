// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// ErrSyncLocalState is reported when the pending changes or the cursor
// cannot be read from the local store.
var ErrSyncLocalState = errors.New("failed to read local sync state")

// syncCoordinator is the concrete implementation of SyncCoordinator.
//
// One round runs at a time. sem is a one-slot semaphore so a waiting caller
// can give up through its context.
type syncCoordinator struct {
	notes    store.LocalNoteRepository
	adapter  adapter.ServerAdapter
	sessions SessionProvider
	network  NetworkClassifier

	requireUnmetered bool

	sem chan struct{}
	now func() time.Time

	logger *logger.Logger
}

func NewSyncCoordinator(
	notes store.LocalNoteRepository,
	serverAdapter adapter.ServerAdapter,
	sessions SessionProvider,
	network NetworkClassifier,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) SyncCoordinator {
	return &syncCoordinator{
		notes:            notes,
		adapter:          serverAdapter,
		sessions:         sessions,
		network:          network,
		requireUnmetered: cfg.RequireUnmetered,
		sem:              make(chan struct{}, 1),
		now:              time.Now,
		logger:           logger,
	}
}

func (s *syncCoordinator) PerformSync(ctx context.Context, minimumInterval time.Duration, wantRemoteChanges bool) (models.SyncResult, error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return models.SyncResult{}, ctx.Err()
	}
	defer func() { <-s.sem }()

	if reason, outcome, ok := s.eligible(ctx, minimumInterval); !ok {
		return s.skipped(ctx, outcome, reason), nil
	}

	cursor, err := s.notes.GetCursor(ctx)
	if err != nil {
		return s.failed(time.Time{}, fmt.Errorf("%w: %w", ErrSyncLocalState, err)), nil
	}
	changed, err := s.notes.GetUnsyncedNotes(ctx)
	if err != nil {
		return s.failed(cursor, fmt.Errorf("%w: %w", ErrSyncLocalState, err)), nil
	}
	deleted, err := s.notes.GetUnsyncedDeletionUUIDs(ctx)
	if err != nil {
		return s.failed(cursor, fmt.Errorf("%w: %w", ErrSyncLocalState, err)), nil
	}

	req := models.SyncRequest{
		LastSync:     cursor,
		ChangedNotes: changed,
		DeletedUUIDs: deleted,
	}
	if req.IsEmpty() && !wantRemoteChanges {
		return models.SyncResult{
			Outcome: models.SyncSkippedNothingToDo,
			Reason:  "no local changes",
			Cursor:  cursor,
		}, nil
	}

	resp, err := s.adapter.Reconcile(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.SyncResult{Outcome: models.SyncFailed, Err: err, Cursor: cursor}, ctxErr
		}

		mapped := mapSyncError(err)
		s.logger.Err(err).Str("func", "syncCoordinator.PerformSync").Str("class", mapped.Error()).Msg("sync round failed")

		result := s.failed(cursor, fmt.Errorf("%w: %w", mapped, err))
		if errors.Is(mapped, ErrSyncTransient) {
			return result, nil
		}
		return result, result.Err
	}

	// the server already committed the round; finish it locally even if the
	// caller gives up now
	applyCtx := context.WithoutCancel(ctx)
	finishedAt := s.now()

	err = s.notes.ApplySyncRound(applyCtx, func(tx store.LocalSyncTx) error {
		if err := tx.UpsertByUUID(applyCtx, resp.ChangedNotes); err != nil {
			return err
		}
		if err := tx.DeleteByUUID(applyCtx, resp.DeletedUUIDs); err != nil {
			return err
		}
		if err := tx.MarkSynced(applyCtx, changed, deleted); err != nil {
			return err
		}
		if err := tx.SetCursor(applyCtx, resp.LastSync); err != nil {
			return err
		}
		return tx.SetLastSuccess(applyCtx, finishedAt)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "syncCoordinator.PerformSync").Msg("failed to apply sync round locally")
		return s.failed(cursor, fmt.Errorf("%w: %w", ErrSyncLocalApply, err)), nil
	}

	newCursor := cursor
	if resp.LastSync.After(newCursor) {
		newCursor = resp.LastSync
	}

	result := models.SyncResult{
		Outcome:       models.SyncCompleted,
		Pushed:        len(changed),
		PushedDeletes: len(deleted),
		Pulled:        len(resp.ChangedNotes),
		PulledDeletes: len(resp.DeletedUUIDs),
		Cursor:        newCursor,
	}

	s.logger.Info().
		Str("func", "syncCoordinator.PerformSync").
		Int("pushed", result.Pushed).
		Int("pushed_deletes", result.PushedDeletes).
		Int("pulled", result.Pulled).
		Int("pulled_deletes", result.PulledDeletes).
		Time("cursor", result.Cursor).
		Msg("sync round completed")

	return result, nil
}

// eligible checks identity, network and throttling, in that order.
func (s *syncCoordinator) eligible(ctx context.Context, minimumInterval time.Duration) (string, models.SyncOutcome, bool) {
	session := s.sessions.Session()
	if !session.IsAuthenticated() {
		return "not signed in", models.SyncSkippedIneligible, false
	}
	if !session.Verified {
		return "account is not verified", models.SyncSkippedIneligible, false
	}

	if s.requireUnmetered && s.network != nil && s.network.IsMetered(ctx) {
		return "network is metered", models.SyncSkippedIneligible, false
	}

	if minimumInterval <= 0 {
		return "", 0, true
	}

	lastSuccess, err := s.notes.GetLastSuccess(ctx)
	if err != nil {
		// an unreadable timestamp must not block syncing forever
		s.logger.Err(err).Str("func", "syncCoordinator.eligible").Msg("failed to read last successful sync")
		return "", 0, true
	}
	if !lastSuccess.IsZero() && s.now().Sub(lastSuccess) < minimumInterval {
		return fmt.Sprintf("last sync %s ago", s.now().Sub(lastSuccess).Truncate(time.Second)), models.SyncSkippedThrottled, false
	}

	return "", 0, true
}

func (s *syncCoordinator) skipped(ctx context.Context, outcome models.SyncOutcome, reason string) models.SyncResult {
	result := models.SyncResult{Outcome: outcome, Reason: reason}
	if cursor, err := s.notes.GetCursor(ctx); err == nil {
		result.Cursor = cursor
	}
	s.logger.Debug().Str("func", "syncCoordinator.PerformSync").Str("outcome", outcome.String()).Str("reason", reason).Msg("sync round skipped")
	return result
}

func (s *syncCoordinator) failed(cursor time.Time, err error) models.SyncResult {
	return models.SyncResult{Outcome: models.SyncFailed, Err: err, Cursor: cursor}
}
