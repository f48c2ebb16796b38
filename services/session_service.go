package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/internal/metrics"
)

// SessionService is the sole mutation surface for Session records: one
// create per login event and at most one logout-time write per session.
type SessionService struct {
	sessionRepo domain.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo domain.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

// CreateSession records a new session for the given user with the login time
// set to now. The userID is trusted; referential integrity against the user
// store is the caller's responsibility. Persistence failures are wrapped in a
// CreationError and never retried.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		LoginTime: time.Now().UTC(),
		IsActive:  true,
	}

	if err := s.sessionRepo.StoreSession(ctx, session); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to create session")
		return nil, apperrors.NewCreationError("session", err)
	}

	metrics.SessionsCreatedTotal.Inc()
	metrics.ActiveSessionsGauge.Inc()
	log.Debug().Str("sessionID", session.ID).Str("userID", userID).Msg("Session created")
	return session, nil
}

// UpdateSessionLogoutTime stamps logout_time = now on the session and returns
// the updated record. It does not flip IsActive and does not check whether
// the session was already closed; a second call overwrites logout_time with
// the later timestamp (last-write-wins). Unknown IDs yield
// errors.ErrSessionNotFound; other persistence failures are wrapped in an
// UpdateError.
func (s *SessionService) UpdateSessionLogoutTime(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.SetSessionLogoutTime(ctx, sessionID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, err
		}
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to update session logout time")
		return nil, apperrors.NewUpdateError("session logout time", err)
	}

	metrics.SessionsClosedTotal.Inc()
	metrics.ActiveSessionsGauge.Dec()
	log.Debug().Str("sessionID", sessionID).Msg("Session logout time recorded")
	return session, nil
}

// ListUserSessions returns the sessions of one user, newest login first.
func (s *SessionService) ListUserSessions(ctx context.Context, userID string, filter domain.SessionFilter) ([]*domain.Session, error) {
	return s.sessionRepo.ListSessionsByUserID(ctx, userID, filter)
}
