// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/codec"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// reconcileService is the concrete implementation of ReconcileService.
//
// Every call is one round: the client's changes are written with a single
// round stamp and the changes the client has not seen yet are read back in
// the same transaction.
type reconcileService struct {
	noteRepository store.NoteRepository

	// now is the server clock. Replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

func NewReconcileService(noteRepository store.NoteRepository, logger *logger.Logger) ReconcileService {
	return &reconcileService{
		noteRepository: noteRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// Reconcile applies the payload of the calling user and returns the notes and
// tombstones stamped after the payload cursor, excluding the uuids the
// payload carried.
//
// Returns ErrUnauthenticated when ctx has no user, ErrInvalidArgument when
// the payload does not decode, ErrInternal when the round failed in storage.
// In the last two cases nothing was written.
func (s *reconcileService) Reconcile(ctx context.Context, payload []byte) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || userID <= 0 {
		log.Error().Str("func", "reconcileService.Reconcile").Msg("no user in context")
		return models.SyncResponse{}, ErrUnauthenticated
	}

	req, err := codec.DecodeRequest(payload)
	if err != nil {
		log.Err(err).Str("func", "reconcileService.Reconcile").Int64("user_id", userID).Msg("rejected sync payload")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	changed := obscureNotes(userID, latestByUUID(req.ChangedNotes))
	deleted := uniqueUUIDs(req.DeletedUUIDs)
	exclude := req.LocalUUIDs()

	var resp models.SyncResponse
	err = s.noteRepository.RunRound(ctx, userID, s.now(), func(ctx context.Context, tx store.RoundTx, syncTime time.Time) error {
		resp = models.SyncResponse{LastSync: syncTime}

		// changes first, so a uuid present in both lists ends up deleted
		if err := tx.UpsertNotes(ctx, changed); err != nil {
			return err
		}
		if err := tx.DeleteNotes(ctx, deleted); err != nil {
			return err
		}

		remoteNotes, err := tx.ChangedNotesSince(ctx, req.LastSync, exclude)
		if err != nil {
			return err
		}
		notes, err := revealNotes(remoteNotes)
		if err != nil {
			return err
		}

		tombstones, err := tx.TombstonesSince(ctx, req.LastSync, exclude)
		if err != nil {
			return err
		}

		resp.ChangedNotes = notes
		resp.DeletedUUIDs = tombstoneUUIDs(tombstones)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "reconcileService.Reconcile").Int64("user_id", userID).Msg("reconciliation round failed")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Debug().
		Str("func", "reconcileService.Reconcile").
		Int64("user_id", userID).
		Int("pushed", len(changed)).
		Int("pushed_deletes", len(deleted)).
		Int("pulled", len(resp.ChangedNotes)).
		Int("pulled_deletes", len(resp.DeletedUUIDs)).
		Time("last_sync", resp.LastSync).
		Msg("reconciliation round committed")

	return resp, nil
}

// latestByUUID drops all but the last occurrence of every uuid, keeping the
// order of first appearance.
func latestByUUID(notes []models.Note) []models.Note {
	index := make(map[string]int, len(notes))
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if i, ok := index[n.UUID]; ok {
			out[i] = n
			continue
		}
		index[n.UUID] = len(out)
		out = append(out, n)
	}
	return out
}

func uniqueUUIDs(uuids []string) []string {
	seen := make(map[string]struct{}, len(uuids))
	out := make([]string, 0, len(uuids))
	for _, u := range uuids {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

func obscureNotes(userID int64, notes []models.Note) []models.RemoteNote {
	remote := make([]models.RemoteNote, 0, len(notes))
	for _, n := range notes {
		remote = append(remote, models.RemoteNote{
			UserID:   userID,
			UUID:     n.UUID,
			Type:     n.Type,
			Title:    codec.Obfuscate(n.Title),
			Content:  codec.Obfuscate(n.Content),
			Metadata: codec.Obfuscate(n.Metadata),
			Added:    n.Added,
			Modified: n.Modified,
			Status:   n.Status,
		})
	}
	return remote
}

func revealNotes(remote []models.RemoteNote) ([]models.Note, error) {
	notes := make([]models.Note, 0, len(remote))
	for _, r := range remote {
		title, err := codec.Deobfuscate(r.Title)
		if err != nil {
			return nil, fmt.Errorf("note %s title: %w", r.UUID, err)
		}
		content, err := codec.Deobfuscate(r.Content)
		if err != nil {
			return nil, fmt.Errorf("note %s content: %w", r.UUID, err)
		}
		metadata, err := codec.Deobfuscate(r.Metadata)
		if err != nil {
			return nil, fmt.Errorf("note %s metadata: %w", r.UUID, err)
		}

		notes = append(notes, models.Note{
			UUID:     r.UUID,
			Type:     r.Type,
			Title:    title,
			Content:  content,
			Metadata: metadata,
			Added:    r.Added,
			Modified: r.Modified,
			Status:   r.Status,
			Synced:   true,
		})
	}
	return notes, nil
}

func tombstoneUUIDs(tombstones []models.Tombstone) []string {
	uuids := make([]string, 0, len(tombstones))
	for _, t := range tombstones {
		uuids = append(uuids, t.UUID)
	}
	return uuids
}
