package http

import (
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher enables the HashSHA256 integrity check on /api/sync. It is nil
	// when no hash key is configured.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Bool("integrity_check", hashKey != "").Msg("http handler created")
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}
	return h
}
