// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteNote is the authoritative-store representation of a note.
//
// Title, Content and Metadata hold obfuscated values. SyncedAt is the stamp
// of the reconciliation round that last wrote the note; it drives
// incremental queries and is never returned to a client as note content.
type RemoteNote struct {
	UserID   int64
	UUID     string
	Type     NoteType
	Title    string
	Content  string
	Metadata string
	Added    time.Time
	Modified time.Time
	Status   NoteStatus
	SyncedAt time.Time
}

// Tombstone marks a note uuid as deleted so other devices learn about the
// deletion. Tombstones are kept indefinitely.
type Tombstone struct {
	UserID    int64
	UUID      string
	DeletedAt time.Time
}
