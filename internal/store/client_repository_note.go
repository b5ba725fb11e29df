package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// queryer is the part of *sql.DB and *sql.Tx the local repository reads through.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type localNoteRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalNoteRepository(db *DB, logger *logger.Logger) LocalNoteRepository {
	return &localNoteRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveNote stores a local edit as unsynced. A pending deletion of the same
// uuid is dropped, since the note exists again.
func (l *localNoteRepository) SaveNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.SaveNote").Str("uuid", note.UUID).Msg("failed to begin transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, saveLocalNote,
		note.UUID,
		int(note.Type),
		note.Title,
		note.Content,
		note.Metadata,
		models.FormatTimestamp(note.Added),
		models.FormatTimestamp(note.Modified),
		int(note.Status),
	)
	if err = row.Scan(&note.ID, &note.Revision); err != nil {
		log.Err(err).Str("func", "localNoteRepository.SaveNote").Str("uuid", note.UUID).Msg("failed to save note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, forgetPendingDeletion, note.UUID); err != nil {
		log.Err(err).Str("func", "localNoteRepository.SaveNote").Str("uuid", note.UUID).Msg("failed to drop pending deletion")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localNoteRepository.SaveNote").Str("uuid", note.UUID).Msg("failed to commit transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	note.Synced = false
	return note, nil
}

func (l *localNoteRepository) GetNote(ctx context.Context, uuid string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := scanLocalNote(l.DB.QueryRowContext(ctx, getLocalNote, uuid))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.GetNote").Str("uuid", uuid).Msg("failed to get note")
		return models.Note{}, err
	}

	return note, nil
}

func (l *localNoteRepository) GetNotes(ctx context.Context) ([]models.Note, error) {
	return l.queryNotes(ctx, "localNoteRepository.GetNotes", getAllLocalNotes)
}

// DeleteNote removes a note and queues its uuid for the next round.
func (l *localNoteRepository) DeleteNote(ctx context.Context, uuid string, deletedAt time.Time) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.DeleteNote").Str("uuid", uuid).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, deleteLocalNote, uuid)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.DeleteNote").Str("uuid", uuid).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoteNotFound
	}

	if _, err = tx.ExecContext(ctx, addPendingDeletion, uuid, models.FormatTimestamp(deletedAt)); err != nil {
		log.Err(err).Str("func", "localNoteRepository.DeleteNote").Str("uuid", uuid).Msg("failed to queue deletion")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localNoteRepository.DeleteNote").Str("uuid", uuid).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localNoteRepository) GetUnsyncedNotes(ctx context.Context) ([]models.Note, error) {
	return l.queryNotes(ctx, "localNoteRepository.GetUnsyncedNotes", getUnsyncedLocalNotes)
}

func (l *localNoteRepository) GetUnsyncedDeletionUUIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getPendingDeletions)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.GetUnsyncedDeletionUUIDs").Msg("failed to query pending deletions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	uuids := make([]string, 0)
	for rows.Next() {
		var uuid string
		if err = rows.Scan(&uuid); err != nil {
			log.Err(err).Str("func", "localNoteRepository.GetUnsyncedDeletionUUIDs").Msg("failed to scan pending deletion")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		uuids = append(uuids, uuid)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return uuids, nil
}

// GetCursor returns the last server-issued cursor, or [models.ZeroCursor]
// when the store has never synced.
func (l *localNoteRepository) GetCursor(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	var raw string
	if err := l.DB.QueryRowContext(ctx, getCursor).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ZeroCursor, nil
		}
		log.Err(err).Str("func", "localNoteRepository.GetCursor").Msg("failed to read cursor")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	cursor, err := models.ParseCursor(raw)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.GetCursor").Str("cursor", raw).Msg("stored cursor is malformed")
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedStoredValue, err)
	}

	return cursor, nil
}

// GetLastSuccess returns the time of the last applied round, or the zero
// time when none was applied yet.
func (l *localNoteRepository) GetLastSuccess(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	var raw sql.NullString
	if err := l.DB.QueryRowContext(ctx, getLastSuccess).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		log.Err(err).Str("func", "localNoteRepository.GetLastSuccess").Msg("failed to read last success")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !raw.Valid {
		return time.Time{}, nil
	}

	at, err := models.ParseTimestamp(raw.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedStoredValue, err)
	}

	return at, nil
}

func (l *localNoteRepository) ApplySyncRound(ctx context.Context, fn func(tx LocalSyncTx) error) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.ApplySyncRound").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(&localSyncTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localNoteRepository.ApplySyncRound").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localNoteRepository) queryNotes(ctx context.Context, funcName, query string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		note, scanErr := scanLocalNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan note row")
			return nil, scanErr
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocalNote(row rowScanner) (models.Note, error) {
	var (
		note            models.Note
		noteType        int
		noteStatus      int
		added, modified string
	)

	err := row.Scan(
		&note.ID,
		&note.UUID,
		&noteType,
		&note.Title,
		&note.Content,
		&note.Metadata,
		&added,
		&modified,
		&noteStatus,
		&note.Synced,
		&note.Revision,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, err
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if note.Added, err = models.ParseTimestamp(added); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrMalformedStoredValue, err)
	}
	if note.Modified, err = models.ParseTimestamp(modified); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrMalformedStoredValue, err)
	}
	note.Type = models.NoteType(noteType)
	note.Status = models.NoteStatus(noteStatus)

	return note, nil
}

// localSyncTx implements [LocalSyncTx] on one open transaction.
type localSyncTx struct {
	tx queryer
}

func (t *localSyncTx) UpsertByUUID(ctx context.Context, notes []models.Note) error {
	log := logger.FromContext(ctx)

	for _, note := range notes {
		_, err := t.tx.ExecContext(ctx, upsertSyncedNote,
			note.UUID,
			int(note.Type),
			note.Title,
			note.Content,
			note.Metadata,
			models.FormatTimestamp(note.Added),
			models.FormatTimestamp(note.Modified),
			int(note.Status),
			note.UUID,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localSyncTx.UpsertByUUID").
				Str("uuid", note.UUID).
				Msg("failed to upsert pulled note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (t *localSyncTx) DeleteByUUID(ctx context.Context, uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}

	if err := t.exec(ctx, "localSyncTx.DeleteByUUID", buildDeleteLocalNotesQuery, uuids); err != nil {
		return err
	}
	return t.exec(ctx, "localSyncTx.DeleteByUUID", buildDeletePendingDeletionsQuery, uuids)
}

func (t *localSyncTx) MarkSynced(ctx context.Context, pushed []models.Note, deletionUUIDs []string) error {
	log := logger.FromContext(ctx)

	for _, note := range pushed {
		res, err := t.tx.ExecContext(ctx, markNoteSynced, note.UUID, note.Revision)
		if err != nil {
			log.Err(err).Str("func", "localSyncTx.MarkSynced").Str("uuid", note.UUID).Msg("failed to mark note synced")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			log.Debug().Str("func", "localSyncTx.MarkSynced").Str("uuid", note.UUID).Msg("note changed during the round, left unsynced")
		}
	}
	if len(deletionUUIDs) > 0 {
		if err := t.exec(ctx, "localSyncTx.MarkSynced", buildDeletePendingDeletionsQuery, deletionUUIDs); err != nil {
			return err
		}
	}

	return nil
}

func (t *localSyncTx) SetCursor(ctx context.Context, cursor time.Time) error {
	log := logger.FromContext(ctx)

	raw := models.FormatTimestamp(cursor)
	if _, err := t.tx.ExecContext(ctx, advanceCursor, raw, raw); err != nil {
		log.Err(err).Str("func", "localSyncTx.SetCursor").Str("cursor", raw).Msg("failed to advance cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (t *localSyncTx) SetLastSuccess(ctx context.Context, at time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := t.tx.ExecContext(ctx, setLastSuccess, models.FormatTimestamp(at)); err != nil {
		log.Err(err).Str("func", "localSyncTx.SetLastSuccess").Msg("failed to record last success")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (t *localSyncTx) exec(ctx context.Context, funcName string, build func([]string) (string, []any, error), uuids []string) error {
	log := logger.FromContext(ctx)

	query, args, err := build(uuids)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = t.tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Int("uuids", len(uuids)).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
