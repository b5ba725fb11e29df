package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientNoteService struct {
	notes store.LocalNoteRepository
	uuids *utils.UUIDGenerator

	now func() time.Time

	logger *logger.Logger
}

func NewClientNoteService(notes store.LocalNoteRepository, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		notes:  notes,
		uuids:  utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// Create assigns a fresh uuid and creation time to note and stores it as
// unsynced.
func (s *clientNoteService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if err := checkNote(note); err != nil {
		return models.Note{}, err
	}

	now := models.TruncateStamp(s.now())
	note.ID = 0
	note.UUID = s.uuids.Generate()
	note.Added = now
	note.Modified = now

	saved, err := s.notes.SaveNote(ctx, note)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Create").Str("uuid", note.UUID).Msg("failed to save note")
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}

	return saved, nil
}

// Update overwrites the content of an existing note. The creation time of
// the stored note is kept.
func (s *clientNoteService) Update(ctx context.Context, note models.Note) (models.Note, error) {
	if err := checkNote(note); err != nil {
		return models.Note{}, err
	}

	current, err := s.notes.GetNote(ctx, note.UUID)
	if err != nil {
		return models.Note{}, fmt.Errorf("load note %s: %w", note.UUID, err)
	}

	note.ID = current.ID
	note.Added = current.Added
	note.Modified = models.TruncateStamp(s.now())

	saved, err := s.notes.SaveNote(ctx, note)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Update").Str("uuid", note.UUID).Msg("failed to save note")
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}

	return saved, nil
}

func (s *clientNoteService) Get(ctx context.Context, uuid string) (models.Note, error) {
	return s.notes.GetNote(ctx, uuid)
}

func (s *clientNoteService) GetAll(ctx context.Context) ([]models.Note, error) {
	return s.notes.GetNotes(ctx)
}

// Delete removes the note locally and queues the deletion for the next round.
func (s *clientNoteService) Delete(ctx context.Context, uuid string) error {
	if err := s.notes.DeleteNote(ctx, uuid, models.TruncateStamp(s.now())); err != nil {
		s.logger.Err(err).Str("func", "clientNoteService.Delete").Str("uuid", uuid).Msg("failed to delete note")
		return fmt.Errorf("delete note %s: %w", uuid, err)
	}
	return nil
}

func checkNote(note models.Note) error {
	if !note.Type.IsValid() || !note.Status.IsValid() {
		return ErrInvalidDataProvided
	}
	if strings.TrimSpace(note.Title) == "" && strings.TrimSpace(note.Content) == "" {
		return ErrEmptyNote
	}
	return nil
}
