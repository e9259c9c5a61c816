package service

import (
	"context"
	"fmt"
	"time"

	"github.com/CollabR18X/CollabR18X/internal/entity"
	"github.com/CollabR18X/CollabR18X/internal/repository"
	"github.com/CollabR18X/CollabR18X/internal/utils"

	"github.com/google/uuid"
)

const sessionTokenSize = 32

// SessionService owns the session table. Tokens handed to clients are raw
// random strings; only their sha256 hash is stored.
type SessionService struct {
	sessions repository.SessionRepository
	clock    Clock
	ttl      time.Duration
}

func NewSessionService(sessions repository.SessionRepository, clock Clock, ttl time.Duration) *SessionService {
	if clock == nil {
		clock = RealClock{}
	}
	if ttl <= 0 {
		ttl = 365 * 24 * time.Hour
	}
	return &SessionService{sessions: sessions, clock: clock, ttl: ttl}
}

// Create issues a new session token for userID. A persistence failure is
// surfaced as ErrSessionCreateFailed so callers never treat the user as
// logged in without a stored session.
func (s *SessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	rawToken, err := utils.GenerateRandomToken(sessionTokenSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSessionCreateFailed, err)
	}

	now := s.clock.Now()
	session := &entity.Session{
		UserID:    userID,
		TokenHash: utils.HashToken(rawToken),
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSessionCreateFailed, err)
	}
	return rawToken, nil
}

// Resolve maps a raw token to the owning user. An expired row is deleted as
// a side effect and reported as absent, so a token resolves to the same
// answer on every access after expiry.
func (s *SessionService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrSessionNotFound
	}

	hash := utils.HashToken(token)
	session, err := s.sessions.FindByTokenHash(ctx, hash)
	if err != nil {
		return uuid.Nil, err
	}
	if session == nil {
		return uuid.Nil, ErrSessionNotFound
	}
	if !s.clock.Now().Before(session.ExpiresAt) {
		_ = s.sessions.DeleteByTokenHash(ctx, hash)
		return uuid.Nil, ErrSessionNotFound
	}
	return session.UserID, nil
}

// Destroy removes the session if present. Destroying an unknown or already
// destroyed token is a no-op.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByTokenHash(ctx, utils.HashToken(token))
}

// SweepExpired bulk-deletes expired rows. Run once at startup; a long
// process accumulates stale rows until restart, which is accepted.
func (s *SessionService) SweepExpired(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx, s.clock.Now())
}
