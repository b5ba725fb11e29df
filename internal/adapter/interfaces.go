// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-note-sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-note-sync server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success it stores the returned bearer
	// token via SetToken and returns the server-side user record.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with login and password. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Reconcile sends one round of local changes and returns the changes the
	// caller has not yet seen together with the new cursor. Any error means
	// the round did not complete from the caller's point of view.
	Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}
