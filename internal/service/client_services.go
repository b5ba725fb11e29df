package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	NoteService     ClientNoteService
	SyncCoordinator SyncCoordinator
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore.SessionRepository, serverAdapter)
	noteSvc := NewClientNoteService(localStore.NoteRepository, logger)
	coordinator := NewSyncCoordinator(
		localStore.NoteRepository,
		serverAdapter,
		authSvc,
		NewConfiguredNetwork(cfg.Adapter),
		cfg.Workers,
		logger,
	)

	return &ClientServices{
		AuthService:     authSvc,
		NoteService:     noteSvc,
		SyncCoordinator: coordinator,
	}
}
