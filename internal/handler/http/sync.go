// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/codec"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// maxSyncBodySize bounds a single sync payload.
const maxSyncBodySize = 32 << 20

// reconcile runs one reconciliation round for the authenticated caller.
//
// The raw body goes to the service untouched; decoding and validation are
// part of the round so a malformed payload is rejected before anything is
// written.
func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSyncBodySize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.reconcile").Msg("failed to read sync payload")
		writeError(w, http.StatusBadRequest, models.ErrorDTO{Code: models.CodeInvalidArgument, Message: app.MsgInvalidSyncPayload})
		return
	}

	resp, err := h.services.ReconcileService.Reconcile(r.Context(), payload)
	if err != nil {
		status, dto := syncFailure(err)
		log.Err(err).Str("func", "*Handler.reconcile").Int("status", status).Str("code", dto.Code).Msg("sync round rejected")
		writeError(w, status, dto)
		return
	}

	body, err := codec.EncodeResponse(resp)
	if err != nil {
		log.Err(err).Str("func", "*Handler.reconcile").Msg("failed to encode sync response")
		writeError(w, http.StatusInternalServerError, models.ErrorDTO{Code: models.CodeInternal, Message: app.MsgInternalServerError})
		return
	}

	log.Debug().
		Str("func", "*Handler.reconcile").
		Int("changed", len(resp.ChangedNotes)).
		Int("deleted", len(resp.DeletedUUIDs)).
		Time("last_sync", resp.LastSync).
		Msg("sync round served")

	if err = utils.WriteJSONBody(w, body, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.reconcile").Msg("failed to write sync response")
	}
}
