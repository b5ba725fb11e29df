package service

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type Services struct {
	AuthService      AuthService
	ReconcileService ReconcileService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(cfg.App.PasswordHashKey), cfg.App, logger),
		ReconcileService: NewReconcileService(storages.NoteRepository, logger),
		AppInfoService:   appInfoService,
	}, nil
}
