// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-note-sync/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FieldLastSync     = "lastSync"
	FieldChangedNotes = "changedNotes"
	FieldDeletedUUIDs = "deletedUuids"
)

// MaxUUIDLength bounds the opaque note identity accepted on the wire.
const MaxUUIDLength = 128

// fieldCheck validates a single named part of a payload.
type fieldCheck struct {
	name  string
	check func() error
}

// SyncPayloadValidator enforces the structural rules of the sync wire
// payload. A request is accepted or rejected as a whole.
type SyncPayloadValidator struct {
}

func NewSyncPayloadValidator() Validator {
	return &SyncPayloadValidator{}
}

func (v *SyncPayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRequestDTO:
		return v.validateRequest(value, fields...)
	case *models.SyncRequestDTO:
		return v.validateRequest(*value, fields...)

	case models.SyncResponseDTO:
		return v.validateResponse(value, fields...)
	case *models.SyncResponseDTO:
		return v.validateResponse(*value, fields...)

	case models.NoteDTO:
		return wrapInvalid(ErrInvalidNote, noteRule(value))
	case *models.NoteDTO:
		return wrapInvalid(ErrInvalidNote, noteRule(*value))

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncPayloadValidator) validateRequest(req models.SyncRequestDTO, fields ...string) error {
	return runChecks(payloadChecks(req.LastSync, req.ChangedNotes, req.DeletedUUIDs), fields)
}

func (v *SyncPayloadValidator) validateResponse(resp models.SyncResponseDTO, fields ...string) error {
	return runChecks(payloadChecks(resp.LastSync, resp.ChangedNotes, resp.DeletedUUIDs), fields)
}

func payloadChecks(lastSync *string, notes []models.NoteDTO, deleted []string) []fieldCheck {
	return []fieldCheck{
		{
			name: FieldLastSync,
			check: func() error {
				err := validation.Validate(lastSync, validation.NotNil, validation.By(cursorRule))
				return wrapInvalid(ErrInvalidCursor, err)
			},
		},
		{
			name: FieldChangedNotes,
			check: func() error {
				err := validation.Validate(notes, validation.Each(validation.By(noteRule)))
				return wrapInvalid(ErrInvalidNote, err)
			},
		},
		{
			name: FieldDeletedUUIDs,
			check: func() error {
				err := validation.Validate(deleted, validation.Each(validation.Required, validation.Length(1, MaxUUIDLength)))
				return wrapInvalid(ErrInvalidDeletedUUIDs, err)
			},
		},
	}
}

func runChecks(checks []fieldCheck, fields []string) error {
	for _, f := range fields {
		if !slices.ContainsFunc(checks, func(c fieldCheck) bool { return c.name == f }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	for _, c := range checks {
		if len(fields) > 0 && !slices.Contains(fields, c.name) {
			continue
		}
		if err := c.check(); err != nil {
			return err
		}
	}

	return nil
}

// noteRule is an ozzo rule body for a single NoteDTO.
func noteRule(value any) error {
	note, ok := value.(models.NoteDTO)
	if !ok {
		return ErrUnsupportedType
	}

	return validation.ValidateStruct(&note,
		validation.Field(&note.UUID, validation.NotNil, validation.Required, validation.Length(1, MaxUUIDLength)),
		validation.Field(&note.Type, validation.NotNil,
			validation.Min(int(models.NoteTypeText)), validation.Max(int(models.NoteTypeList))),
		validation.Field(&note.Title, validation.NotNil),
		validation.Field(&note.Content, validation.NotNil),
		validation.Field(&note.Metadata, validation.NotNil),
		validation.Field(&note.Added, validation.NotNil, validation.By(timestampRule)),
		validation.Field(&note.Modified, validation.NotNil, validation.By(timestampRule)),
		validation.Field(&note.Status, validation.NotNil,
			validation.Min(int(models.NoteStatusActive)), validation.Max(int(models.NoteStatusDeleted))),
	)
}

func cursorRule(value any) error {
	s, ok := stringValue(value)
	if !ok {
		return validation.NewError("validation_cursor_required", "lastSync is required")
	}
	if _, err := models.ParseCursor(s); err != nil {
		return validation.NewError("validation_cursor_format", "must be a millisecond UTC timestamp")
	}
	return nil
}

func timestampRule(value any) error {
	s, ok := stringValue(value)
	if !ok {
		return validation.NewError("validation_timestamp_required", "timestamp is required")
	}
	if _, err := models.ParseTimestamp(s); err != nil {
		return validation.NewError("validation_timestamp_format", "must be an ISO-8601 timestamp")
	}
	return nil
}

func stringValue(value any) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	default:
		return "", false
	}
}

func wrapInvalid(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
