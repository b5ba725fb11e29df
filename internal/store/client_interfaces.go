package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalNoteRepository is the device-local note store.
//
// Local edits go through SaveNote and DeleteNote, which mark the change as
// not yet acknowledged by the server. The sync coordinator reads pending
// changes with the Get* methods and applies a finished round through
// ApplySyncRound.
type LocalNoteRepository interface {
	SaveNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, uuid string) (models.Note, error)
	GetNotes(ctx context.Context) ([]models.Note, error)
	DeleteNote(ctx context.Context, uuid string, deletedAt time.Time) error

	GetUnsyncedNotes(ctx context.Context) ([]models.Note, error)
	GetUnsyncedDeletionUUIDs(ctx context.Context) ([]string, error)
	GetCursor(ctx context.Context) (time.Time, error)
	GetLastSuccess(ctx context.Context) (time.Time, error)

	// ApplySyncRound runs fn in one local transaction. When fn returns an
	// error nothing it wrote is kept.
	ApplySyncRound(ctx context.Context, fn func(tx LocalSyncTx) error) error
}

// LocalSyncTx is the write view of the local store while a round is applied.
type LocalSyncTx interface {
	// UpsertByUUID stores notes as synced, keeping the surrogate id of a
	// note that already exists. Notes with an unpushed local edit or a
	// pending deletion are left alone.
	UpsertByUUID(ctx context.Context, notes []models.Note) error
	// DeleteByUUID removes synced notes and any pending deletion for them.
	DeleteByUUID(ctx context.Context, uuids []string) error
	// MarkSynced flags pushed notes as synced when their revision is still
	// the pushed one, and discards acknowledged pending deletions.
	MarkSynced(ctx context.Context, pushed []models.Note, deletionUUIDs []string) error
	// SetCursor stores cursor unless the stored one is newer or equal.
	SetCursor(ctx context.Context, cursor time.Time) error
	SetLastSuccess(ctx context.Context, at time.Time) error
}

// LocalSessionRepository persists the signed-in identity across restarts.
type LocalSessionRepository interface {
	GetSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}
