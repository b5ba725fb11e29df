// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteType is the kind of content a note carries.
type NoteType int

const (
	// NoteTypeText is a plain text note.
	NoteTypeText NoteType = iota
	// NoteTypeList is a checklist note; item check-states live in Metadata.
	NoteTypeList
)

// IsValid reports whether t is one of the defined note types.
func (t NoteType) IsValid() bool {
	return t >= NoteTypeText && t <= NoteTypeList
}

// String returns a human-readable name of the note type.
func (t NoteType) String() string {
	switch t {
	case NoteTypeText:
		return "text"
	case NoteTypeList:
		return "list"
	default:
		return "unknown"
	}
}

// NoteStatus is the lifecycle state of a note as seen by the user.
type NoteStatus int

const (
	NoteStatusActive NoteStatus = iota
	NoteStatusArchived
	NoteStatusTrashed
	NoteStatusDeleted
)

// IsValid reports whether s is one of the defined note statuses.
func (s NoteStatus) IsValid() bool {
	return s >= NoteStatusActive && s <= NoteStatusDeleted
}

// String returns a human-readable name of the note status.
func (s NoteStatus) String() string {
	switch s {
	case NoteStatusActive:
		return "active"
	case NoteStatusArchived:
		return "archived"
	case NoteStatusTrashed:
		return "trashed"
	case NoteStatusDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Note is a single user note.
//
// UUID is the durable identity shared by every device and the server. ID is
// the storage-internal surrogate key of the local store and is never sent
// over the wire. Synced reports whether the current local content has been
// acknowledged by the authoritative store. Revision counts local saves and
// is local-only as well; a round marks a pushed note synced only while its
// revision is still the one that was pushed.
type Note struct {
	ID       int64
	UUID     string
	Type     NoteType
	Title    string
	Content  string
	Metadata string
	Added    time.Time
	Modified time.Time
	Status   NoteStatus
	Synced   bool
	Revision int64
}

// UUIDs returns the uuids of notes in input order.
func UUIDs(notes []Note) []string {
	uuids := make([]string, 0, len(notes))
	for _, n := range notes {
		uuids = append(uuids, n.UUID)
	}
	return uuids
}
