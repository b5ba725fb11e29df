package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	service.ErrUnauthenticated: http.StatusUnauthorized,
	service.ErrInvalidArgument: http.StatusBadRequest,
	service.ErrInternal:        http.StatusInternalServerError,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommitingTransaction:  http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
	store.ErrRoundRetriesExhausted: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// syncFailure returns the status and the wire error of a failed
// reconciliation. Storage details never leave the server.
func syncFailure(err error) (int, models.ErrorDTO) {
	status := statusFromError(err)
	switch status {
	case http.StatusUnauthorized:
		return status, models.ErrorDTO{Code: models.CodeUnauthenticated, Message: app.MsgTokenIsExpiredOrInvalid}
	case http.StatusBadRequest:
		return status, models.ErrorDTO{Code: models.CodeInvalidArgument, Message: err.Error()}
	default:
		return http.StatusInternalServerError, models.ErrorDTO{Code: models.CodeInternal, Message: app.MsgSyncRoundFailed}
	}
}

func writeError(w http.ResponseWriter, status int, dto models.ErrorDTO) {
	_ = utils.WriteJSON(w, dto, status)
}
