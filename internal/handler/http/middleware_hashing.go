package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

// withHashCheck rejects requests whose HashSHA256 header does not match the
// HMAC-SHA256 of the body under the server hash key. Without a configured
// key every request passes.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			writeError(w, http.StatusBadRequest, models.ErrorDTO{Code: models.CodeInvalidArgument, Message: app.MsgInvalidSyncPayload})
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		received := r.Header.Get(HashHeader)
		if !h.hasher.Verify(body, received) {
			log.Err(ErrHashMismatch).Str("func", "*Handler.withHashCheck").
				Str("hash from request", received).
				Int("body_size", len(body)).
				Msg("hashes are not equal")
			writeError(w, http.StatusBadRequest, models.ErrorDTO{Code: models.CodeInvalidArgument, Message: app.MsgIntegrityCheckFailed})
			return
		}

		log.Debug().Str("func", "*Handler.withHashCheck").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
