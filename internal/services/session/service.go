package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/wordgrid/internal/dependencies/clock"
	"github.com/mcoot/wordgrid/internal/dependencies/random"
	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/storage"
)

const (
	tokenPrefix   = "s_"
	tokenLength   = 22
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Config holds configuration for the session service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// Service creates, loads and persists player sessions
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	sessionDuration time.Duration
}

// New creates a new SessionService
func New(storage storage.Storage, clock clock.Clock, rnd random.Random, logger *slog.Logger, cfg Config) *Service {
	if cfg.SessionDuration <= 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		random:          rnd,
		logger:          logger,
		sessionDuration: cfg.SessionDuration,
	}
}

// Create starts an empty session with no board and zeroed stats
func (s *Service) Create(ctx context.Context) (*model.Session, error) {
	now := s.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(tokenPrefix + s.random.String(tokenLength, tokenAlphabet)),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session created", slog.String("session_id", string(session.ID)))
	return session, nil
}

// Get returns the session, or ErrSessionNotFound if it is missing or expired.
// Expired sessions are removed from storage.
func (s *Service) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(s.clock.Now()) {
		if err := s.storage.DeleteSession(ctx, id); err != nil {
			return nil, err
		}
		s.logger.Info("session expired", slog.String("session_id", string(id)))
		return nil, model.ErrSessionNotFound
	}

	return session, nil
}

// Save persists changes to an existing session
func (s *Service) Save(ctx context.Context, session *model.Session) error {
	return s.storage.SaveSession(ctx, session)
}

// Delete removes a session
func (s *Service) Delete(ctx context.Context, id model.SessionID) error {
	return s.storage.DeleteSession(ctx, id)
}

// Interface for dependency injection
type ServiceInterface interface {
	Create(ctx context.Context) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id model.SessionID) error
}

var _ ServiceInterface = (*Service)(nil)
