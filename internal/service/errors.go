package service

import "errors"

// Reconciliation failures. Handlers map them onto the wire failure codes.
var (
	ErrUnauthenticated = errors.New("caller identity is missing")
	ErrInvalidArgument = errors.New("invalid sync payload")
	ErrInternal        = errors.New("reconciliation round failed")
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client sync failures returned or reported by the sync coordinator.
var (
	// ErrSyncValidation means the server rejected the payload or answered
	// with a body that cannot be decoded. It is returned to the caller.
	ErrSyncValidation = errors.New("sync payload rejected by server")

	// ErrSyncUnauthenticated means the server did not accept the session token.
	ErrSyncUnauthenticated = errors.New("sync session is not authenticated")

	// ErrSyncTransient covers network failures, timeouts and server side
	// errors. The round had no effect and may be retried.
	ErrSyncTransient = errors.New("sync failed temporarily")

	// ErrSyncLocalApply means the server round succeeded but the local
	// transaction failed. Local data is untouched and the next round resends.
	ErrSyncLocalApply = errors.New("failed to apply sync round locally")
)

var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotSignedIn      = errors.New("not signed in")
	ErrEmptyNote        = errors.New("note has neither title nor content")
)
