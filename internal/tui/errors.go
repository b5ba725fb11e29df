// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

var ErrUserQuit = errors.New("вышел из программы")

const msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

// humanizeAuthError turns a sign-in or registration failure into a message
// for the form.
func humanizeAuthError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Неверный логин или пароль"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "Логин уже занят"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Логин: от 3 символов без пробелов, пароль: от 6 символов"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrTransport) ||
		errors.Is(err, adapter.ErrBadGateway) ||
		errors.Is(err, adapter.ErrServiceUnavailable) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

// syncStatusMessage describes the outcome of a round for the status line.
// ok is false when the outcome is a failure.
func syncStatusMessage(result models.SyncResult, err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, service.ErrSyncUnauthenticated):
		return "Сеанс истёк, войдите заново", false
	case errors.Is(err, service.ErrSyncValidation):
		return "Сервер отклонил изменения: " + err.Error(), false
	case err != nil:
		return "Ошибка синхронизации: " + err.Error(), false
	}

	switch result.Outcome {
	case models.SyncCompleted:
		return fmt.Sprintf("Синхронизация завершена: отправлено %d, получено %d, удалено %d",
			result.Pushed+result.PushedDeletes, result.Pulled, result.PulledDeletes), true
	case models.SyncSkippedThrottled:
		return "Синхронизация недавно выполнялась (" + result.Reason + ")", true
	case models.SyncSkippedNothingToDo:
		return "Нет изменений для синхронизации", true
	case models.SyncSkippedIneligible:
		return "Синхронизация недоступна: " + result.Reason, false
	case models.SyncFailed:
		return "Синхронизация не выполнена. " + humanizeServerUnavailableError(result.Err), false
	default:
		return result.Outcome.String(), true
	}
}
