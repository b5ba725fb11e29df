package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter

	mu      sync.RWMutex
	session models.Session
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientAuthService.Register").Str("login", user.Login).Msg("registration failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.signIn(ctx, registered)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientAuthService.Login").Str("login", user.Login).Msg("login failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.signIn(ctx, found)
}

// signIn persists the identity returned by the server together with the
// token the adapter received.
func (a *clientAuthService) signIn(ctx context.Context, user models.User) (models.Session, error) {
	session := models.Session{
		UserID:   user.UserID,
		Login:    user.Login,
		Token:    a.adapter.Token(),
		Verified: user.Verified,
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.setSession(session)
	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return models.Session{}, ErrNotSignedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !session.IsAuthenticated() {
		return models.Session{}, ErrNotSignedIn
	}

	a.adapter.SetToken(session.Token)
	a.setSession(session)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	a.adapter.SetToken("")
	a.setSession(models.Session{})
	return nil
}

func (a *clientAuthService) Session() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *clientAuthService) setSession(session models.Session) {
	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
}
