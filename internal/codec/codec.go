// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec validates and (de)serializes the JSON payload exchanged
// between a sync client and the reconciliation endpoint.
//
// Decoding is all-or-nothing: a payload that is not well-formed JSON of the
// expected shape, or that breaks any rule of [validators.SyncPayloadValidator],
// is rejected with an error wrapping [ErrInvalidPayload] and no part of it is
// returned. Absent or null changedNotes and deletedUuids decode to empty
// lists. Encoded payloads never carry the server-side sync stamp of a note.
package codec

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

var payloadValidator = validators.NewSyncPayloadValidator()

// DecodeRequest parses and validates a raw sync request.
func DecodeRequest(raw []byte) (models.SyncRequest, error) {
	var dto models.SyncRequestDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return models.SyncRequest{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := payloadValidator.Validate(context.Background(), dto); err != nil {
		return models.SyncRequest{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	lastSync, err := models.ParseCursor(*dto.LastSync)
	if err != nil {
		return models.SyncRequest{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	notes, err := notesFromDTO(dto.ChangedNotes)
	if err != nil {
		return models.SyncRequest{}, err
	}

	return models.SyncRequest{
		LastSync:     lastSync,
		ChangedNotes: notes,
		DeletedUUIDs: nonNilStrings(dto.DeletedUUIDs),
	}, nil
}

// EncodeRequest serializes a sync request for the wire.
func EncodeRequest(req models.SyncRequest) ([]byte, error) {
	dto := models.SyncRequestDTO{
		LastSync:     ptr(models.FormatTimestamp(req.LastSync)),
		ChangedNotes: notesToDTO(req.ChangedNotes),
		DeletedUUIDs: nonNilStrings(req.DeletedUUIDs),
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return raw, nil
}

// DecodeResponse parses and validates a raw sync response.
func DecodeResponse(raw []byte) (models.SyncResponse, error) {
	var dto models.SyncResponseDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := payloadValidator.Validate(context.Background(), dto); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	lastSync, err := models.ParseCursor(*dto.LastSync)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	notes, err := notesFromDTO(dto.ChangedNotes)
	if err != nil {
		return models.SyncResponse{}, err
	}

	return models.SyncResponse{
		LastSync:     lastSync,
		ChangedNotes: notes,
		DeletedUUIDs: nonNilStrings(dto.DeletedUUIDs),
	}, nil
}

// EncodeResponse serializes a sync response. Both lists are always present
// in the output, empty when there is nothing to report.
func EncodeResponse(resp models.SyncResponse) ([]byte, error) {
	dto := models.SyncResponseDTO{
		LastSync:     ptr(models.FormatTimestamp(resp.LastSync)),
		ChangedNotes: notesToDTO(resp.ChangedNotes),
		DeletedUUIDs: nonNilStrings(resp.DeletedUUIDs),
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return raw, nil
}

// NoteToDTO converts a note to its wire shape. The local surrogate id and
// the synced marker are not part of it.
func NoteToDTO(n models.Note) models.NoteDTO {
	return models.NoteDTO{
		UUID:     ptr(n.UUID),
		Type:     ptr(int(n.Type)),
		Title:    ptr(n.Title),
		Content:  ptr(n.Content),
		Metadata: ptr(n.Metadata),
		Added:    ptr(models.FormatTimestamp(n.Added)),
		Modified: ptr(models.FormatTimestamp(n.Modified)),
		Status:   ptr(int(n.Status)),
	}
}

// NoteFromDTO converts a validated wire note back to a note.
func NoteFromDTO(dto models.NoteDTO) (models.Note, error) {
	if dto.UUID == nil || dto.Type == nil || dto.Title == nil || dto.Content == nil ||
		dto.Metadata == nil || dto.Added == nil || dto.Modified == nil || dto.Status == nil {
		return models.Note{}, fmt.Errorf("%w: incomplete note", ErrInvalidPayload)
	}

	added, err := models.ParseTimestamp(*dto.Added)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	modified, err := models.ParseTimestamp(*dto.Modified)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return models.Note{
		UUID:     *dto.UUID,
		Type:     models.NoteType(*dto.Type),
		Title:    *dto.Title,
		Content:  *dto.Content,
		Metadata: *dto.Metadata,
		Added:    added,
		Modified: modified,
		Status:   models.NoteStatus(*dto.Status),
	}, nil
}

func notesFromDTO(dtos []models.NoteDTO) ([]models.Note, error) {
	notes := make([]models.Note, 0, len(dtos))
	for _, dto := range dtos {
		n, err := NoteFromDTO(dto)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func notesToDTO(notes []models.Note) []models.NoteDTO {
	dtos := make([]models.NoteDTO, 0, len(notes))
	for _, n := range notes {
		dtos = append(dtos, NoteToDTO(n))
	}
	return dtos
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}
