// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow asks the user to sign in or register. notice, when not
	// empty, explains why. Returns tui.ErrUserQuit if the user gave up.
	LoginFlow(ctx context.Context, notice string) (models.Session, error)

	// MainLoop runs until the user quits. logout is true when the session
	// has to end.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
