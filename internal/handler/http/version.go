package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// getServerVersion answers with the plain text version of the running server.
// Clients show it next to their own build info.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	logger.FromRequest(r).Debug().Str("func", "*Handler.getServerVersion").Str("version", version).Send()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, version)
}
