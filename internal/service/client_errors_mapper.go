// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// mapAdapterError translates the adapter's transport error of an account call
// into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if strings.Contains(msg, app.MsgInvalidLoginPassword) {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrLoginAlreadyExists

	case errors.Is(err, adapter.ErrInternalServerError):
		if strings.Contains(msg, app.MsgRegistrationFailed) {
			return ErrRegisterOnServer
		}
		if strings.Contains(msg, app.MsgLoginFailed) {
			return ErrLoginOnServer
		}
	}

	return err
}

// mapSyncError sorts a failed reconcile call into the sync error taxonomy.
// A rejected payload and an undecodable 2xx body both fail the same way on
// every retry, so neither is transient.
func mapSyncError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return ErrSyncUnauthenticated
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrMalformedResponse):
		return ErrSyncValidation
	default:
		return ErrSyncTransient
	}
}
