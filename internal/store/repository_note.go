// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// maxRoundAttempts bounds how many times a round failing with a
	// retryable error is run.
	maxRoundAttempts = 3

	// roundRetryBaseDelay is the wait before the second attempt. Every
	// following attempt waits twice as long as the previous one.
	roundRetryBaseDelay = 25 * time.Millisecond
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Live notes are kept in the "notes" table, deletions in
// "tombstones", and the last issued round stamp of every user in
// "sync_clock".
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// RunRound implements [NoteRepository].
//
// The round stamp is issued by the "sync_clock" row of the user inside the
// round transaction, so the row lock serializes rounds of the same user until
// commit or rollback. When the round fails with an error the classifier marks
// [Retryable] it is run again in a fresh transaction, up to
// [maxRoundAttempts] times, waiting with exponential backoff in between.
// fn may therefore run more than once and must not keep state from a failed
// attempt.
func (n *noteRepository) RunRound(ctx context.Context, userID int64, candidate time.Time, fn RoundFunc) error {
	log := logger.FromContext(ctx)

	delay := roundRetryBaseDelay
	var lastErr error

	for attempt := 1; attempt <= maxRoundAttempts; attempt++ {
		lastErr = n.runRoundOnce(ctx, userID, candidate, fn)
		if lastErr == nil {
			return nil
		}

		if !n.retryable(lastErr) {
			return lastErr
		}

		log.Warn().Err(lastErr).
			Str("func", "noteRepository.RunRound").
			Int64("user_id", userID).
			Int("attempt", attempt).
			Msg("round failed with retryable error")

		if attempt == maxRoundAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", lastErr, ctx.Err())
		case <-timer.C:
		}
		delay *= 2
	}

	log.Error().Err(lastErr).
		Str("func", "noteRepository.RunRound").
		Int64("user_id", userID).
		Msg("round retries exhausted")

	return fmt.Errorf("%w: %w", ErrRoundRetriesExhausted, lastErr)
}

func (n *noteRepository) runRoundOnce(ctx context.Context, userID int64, candidate time.Time, fn RoundFunc) error {
	log := logger.FromContext(ctx)

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.runRoundOnce").
			Int64("user_id", userID).
			Msg("failed to begin round transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var stamp time.Time
	if err = tx.QueryRowContext(ctx, stampRound, userID, models.TruncateStamp(candidate)).Scan(&stamp); err != nil {
		log.Err(err).
			Str("func", "noteRepository.runRoundOnce").
			Int64("user_id", userID).
			Msg("failed to issue round stamp")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	stamp = models.TruncateStamp(stamp)

	if err = fn(ctx, &roundTx{tx: tx, userID: userID, stamp: stamp}, stamp); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.runRoundOnce").
			Int64("user_id", userID).
			Msg("failed to commit round transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (n *noteRepository) retryable(err error) bool {
	if n.errorClassificator == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return n.errorClassificator.Classify(err) == Retryable
}

// roundTx implements [RoundTx] on top of one open transaction.
type roundTx struct {
	tx     *sql.Tx
	userID int64
	stamp  time.Time
}

// UpsertNotes implements [RoundTx]. SyncedAt of the given notes is ignored.
func (r *roundTx) UpsertNotes(ctx context.Context, notes []models.RemoteNote) error {
	if len(notes) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	for batch := range slices.Chunk(notes, writeBatchSize) {
		query, args, err := buildUpsertNotesQuery(r.userID, r.stamp, batch)
		if err != nil {
			log.Err(err).Str("func", "roundTx.UpsertNotes").Int64("user_id", r.userID).Msg("failed to build upsert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "roundTx.UpsertNotes").Int64("user_id", r.userID).Int("notes", len(batch)).Msg("failed to upsert notes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	query, args, err := buildDeleteTombstonesQuery(r.userID, remoteUUIDs(notes))
	if err != nil {
		log.Err(err).Str("func", "roundTx.UpsertNotes").Int64("user_id", r.userID).Msg("failed to build tombstone removal query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "roundTx.UpsertNotes").Int64("user_id", r.userID).Msg("failed to remove tombstones of upserted notes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteNotes implements [RoundTx].
func (r *roundTx) DeleteNotes(ctx context.Context, uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNotesQuery(r.userID, uuids)
	if err != nil {
		log.Err(err).Str("func", "roundTx.DeleteNotes").Int64("user_id", r.userID).Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "roundTx.DeleteNotes").Int64("user_id", r.userID).Int("uuids", len(uuids)).Msg("failed to delete notes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for batch := range slices.Chunk(uuids, writeBatchSize) {
		query, args, err = buildUpsertTombstonesQuery(r.userID, r.stamp, batch)
		if err != nil {
			log.Err(err).Str("func", "roundTx.DeleteNotes").Int64("user_id", r.userID).Msg("failed to build tombstone query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "roundTx.DeleteNotes").Int64("user_id", r.userID).Int("uuids", len(batch)).Msg("failed to write tombstones")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// ChangedNotesSince implements [RoundTx].
func (r *roundTx) ChangedNotesSince(ctx context.Context, since time.Time, exclude []string) ([]models.RemoteNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangedNotesQuery(r.userID, since, exclude)
	if err != nil {
		log.Err(err).Str("func", "roundTx.ChangedNotesSince").Int64("user_id", r.userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "roundTx.ChangedNotesSince").Int64("user_id", r.userID).Msg("failed to query changed notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.RemoteNote, 0, 16)
	for rows.Next() {
		var (
			note       models.RemoteNote
			noteType   int
			noteStatus int
		)
		scanErr := rows.Scan(
			&note.UserID,
			&note.UUID,
			&noteType,
			&note.Title,
			&note.Content,
			&note.Metadata,
			&note.Added,
			&note.Modified,
			&noteStatus,
			&note.SyncedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "roundTx.ChangedNotesSince").Int64("user_id", r.userID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		note.Type = models.NoteType(noteType)
		note.Status = models.NoteStatus(noteStatus)
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "roundTx.ChangedNotesSince").Int64("user_id", r.userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// TombstonesSince implements [RoundTx].
func (r *roundTx) TombstonesSince(ctx context.Context, since time.Time, exclude []string) ([]models.Tombstone, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTombstonesQuery(r.userID, since, exclude)
	if err != nil {
		log.Err(err).Str("func", "roundTx.TombstonesSince").Int64("user_id", r.userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "roundTx.TombstonesSince").Int64("user_id", r.userID).Msg("failed to query tombstones")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tombstones := make([]models.Tombstone, 0, 16)
	for rows.Next() {
		var t models.Tombstone
		if scanErr := rows.Scan(&t.UserID, &t.UUID, &t.DeletedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "roundTx.TombstonesSince").Int64("user_id", r.userID).Msg("failed to scan tombstone row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tombstones = append(tombstones, t)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "roundTx.TombstonesSince").Int64("user_id", r.userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tombstones, nil
}

func remoteUUIDs(notes []models.RemoteNote) []string {
	uuids := make([]string, 0, len(notes))
	for _, n := range notes {
		uuids = append(uuids, n.UUID)
	}
	return uuids
}
