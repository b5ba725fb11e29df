package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores the accounts of the authoritative store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteRepository is the authoritative note store.
//
// RunRound executes fn inside a single transaction that owns the round of
// userID. The round stamp handed to fn is candidate truncated to
// milliseconds, raised when needed so that it is strictly greater than any
// stamp previously issued to the same user. Rounds of the same user are
// serialized; rounds of different users never contend. Either every write
// made by fn commits or none does.
type NoteRepository interface {
	RunRound(ctx context.Context, userID int64, candidate time.Time, fn RoundFunc) error
}

// RoundFunc is the body of a reconciliation round.
type RoundFunc func(ctx context.Context, tx RoundTx, syncTime time.Time) error

// RoundTx is the view of the authoritative store inside one round. Every
// method is scoped to the user that owns the round, and every write is
// stamped with the round stamp.
type RoundTx interface {
	// UpsertNotes writes notes keyed by uuid and removes their tombstones.
	UpsertNotes(ctx context.Context, notes []models.RemoteNote) error
	// DeleteNotes removes live notes and writes or overwrites their tombstones.
	DeleteNotes(ctx context.Context, uuids []string) error
	// ChangedNotesSince returns live notes stamped strictly after since,
	// leaving out the excluded uuids.
	ChangedNotesSince(ctx context.Context, since time.Time, exclude []string) ([]models.RemoteNote, error)
	// TombstonesSince returns tombstones stamped strictly after since,
	// leaving out the excluded uuids.
	TombstonesSince(ctx context.Context, since time.Time, exclude []string) ([]models.Tombstone, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
