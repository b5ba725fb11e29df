// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteDTO is the wire shape of a note.
//
// Every field is a pointer so that a decoder can tell an absent field from a
// zero value. The server-side sync stamp is deliberately absent.
type NoteDTO struct {
	UUID     *string `json:"uuid"`
	Type     *int    `json:"type"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Metadata *string `json:"metadata"`
	Added    *string `json:"added"`
	Modified *string `json:"modified"`
	Status   *int    `json:"status"`
}

// SyncRequestDTO is the wire shape of a sync request (client → service).
// Absent ChangedNotes and DeletedUUIDs mean empty lists.
type SyncRequestDTO struct {
	LastSync     *string   `json:"lastSync"`
	ChangedNotes []NoteDTO `json:"changedNotes,omitempty"`
	DeletedUUIDs []string  `json:"deletedUuids,omitempty"`
}

// SyncResponseDTO is the wire shape of a sync response (service → client).
type SyncResponseDTO struct {
	LastSync     *string   `json:"lastSync"`
	ChangedNotes []NoteDTO `json:"changedNotes"`
	DeletedUUIDs []string  `json:"deletedUuids"`
}

// ErrorDTO is the body of every non-2xx sync response.
type ErrorDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Failure codes returned by the reconciliation endpoint.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeInvalidArgument = "invalid-argument"
	CodeInternal        = "internal"
)
