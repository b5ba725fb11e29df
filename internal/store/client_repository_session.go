package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSession returns the stored identity or [ErrNoSession].
func (s *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := s.DB.QueryRowContext(ctx, getSession).Scan(&session.UserID, &session.Login, &session.Token, &session.Verified)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (s *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, saveSession, session.UserID, session.Login, session.Token, session.Verified); err != nil {
		log.Err(err).Str("func", "localSessionRepository.SaveSession").Int64("user_id", session.UserID).Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localSessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, clearSession); err != nil {
		log.Err(err).Str("func", "localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
