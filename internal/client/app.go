package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

const noticeSignedOut = "Вы вышли из аккаунта"

type App struct {
	auth    service.ClientAuthService
	ui      UI
	workers workers.Worker

	logger *logger.Logger
}

// NewApp creates the client application. workers run only while a user is
// signed in.
func NewApp(auth service.ClientAuthService, ui UI, workers workers.Worker, logger *logger.Logger) *App {
	return &App{
		auth:    auth,
		ui:      ui,
		workers: workers,
		logger:  logger,
	}
}

// Run restores the stored session or asks the user to sign in, then runs the
// main loop with the background workers. Signing out returns to the sign-in
// flow. A user quitting the sign-in flow is not an error.
func (a *App) Run(ctx context.Context) error {
	session, err := a.auth.RestoreSession(ctx)
	notice := ""

	for {
		switch {
		case err == nil:
		case errors.Is(err, service.ErrNotSignedIn):
			session, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		default:
			return fmt.Errorf("restore session: %w", err)
		}

		var logout bool
		logout, err = a.runSession(ctx, session)
		if err != nil || !logout {
			return err
		}

		if err := a.auth.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Str("login", session.Login).Msg("signed out")

		notice = noticeSignedOut
		err = service.ErrNotSignedIn
	}
}

func (a *App) runSession(ctx context.Context, session models.Session) (bool, error) {
	a.logger.Info().Int64("user_id", session.UserID).Msg("session started")

	a.workers.Run(ctx)
	defer a.workers.Stop()

	logout, err := a.ui.MainLoop(ctx, session)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
