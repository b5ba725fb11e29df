package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration and
// authentication. The signed-in identity is persisted locally so it survives
// restarts.
type ClientAuthService interface {
	// Register creates a new account on the server and signs in with it.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates against the server and stores the session locally.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// RestoreSession loads a previously stored session and hands its token
	// to the server adapter. Returns ErrNotSignedIn if there is none.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout forgets the local session. Local notes are kept.
	Logout(ctx context.Context) error

	SessionProvider
}

// SessionProvider exposes the identity currently signed in on this device.
type SessionProvider interface {
	Session() models.Session
}

// ClientNoteService is the local note CRUD used by the UI. Every change is
// recorded as unsynced and picked up by the next sync round.
type ClientNoteService interface {
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Get(ctx context.Context, uuid string) (models.Note, error)
	GetAll(ctx context.Context) ([]models.Note, error)
	Delete(ctx context.Context, uuid string) error
}

// SyncCoordinator runs sync rounds between the local store and the server.
type SyncCoordinator interface {
	// PerformSync runs at most one round. A positive minimumInterval skips
	// the round when the last successful round is more recent than that;
	// zero forces it. With wantRemoteChanges false the round is skipped when
	// nothing local is unsynced.
	//
	// The returned error is one of ErrSyncUnauthenticated or
	// ErrSyncValidation, or a context error. Transient and local apply
	// failures are reported in the result with Outcome SyncFailed.
	PerformSync(ctx context.Context, minimumInterval time.Duration, wantRemoteChanges bool) (models.SyncResult, error)
}

// NetworkClassifier reports whether the active network is metered.
type NetworkClassifier interface {
	IsMetered(ctx context.Context) bool
}
