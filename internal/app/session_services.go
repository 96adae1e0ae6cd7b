package app

import (
	"context"
	"fmt"
	"time"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// sessionService implements the SessionService interface for creating and
// managing encryption sessions
type sessionService struct {
	keyPairGenerator rsa.KeyPairGenerator
	sessionRepo      sessions.SessionRepository
	messageRepo      sessions.MessageRepository
	logger           logger.Logger
}

// NewSessionService creates a new sessionService instance
func NewSessionService(keyPairGenerator rsa.KeyPairGenerator, sessionRepo sessions.SessionRepository, messageRepo sessions.MessageRepository, logger logger.Logger) (sessions.SessionService, error) {
	return &sessionService{
		keyPairGenerator: keyPairGenerator,
		sessionRepo:      sessionRepo,
		messageRepo:      messageRepo,
		logger:           logger,
	}, nil
}

// Create generates a fresh key pair of the requested size and persists it as
// a new session. A bits value of zero selects DefaultKeyBits.
func (s *sessionService) Create(ctx context.Context, bits int) (*sessions.Session, error) {
	if bits == 0 {
		bits = sessions.DefaultKeyBits
	}
	if bits < sessions.MinKeyBits || bits > sessions.MaxKeyBits || bits%sessions.KeyBitsStep != 0 {
		return nil, fmt.Errorf("key size %d is not supported; sizes run from %d to %d bits in steps of %d", bits, sessions.MinKeyBits, sessions.MaxKeyBits, sessions.KeyBitsStep)
	}

	keyPair, err := s.keyPairGenerator.GenerateKeyPair(bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	session := &sessions.Session{
		ID:              uuid.New().String(),
		Bits:            bits,
		Modulus:         keyPair.Public.N.String(),
		PublicExponent:  keyPair.Public.E.String(),
		PrivateExponent: keyPair.Private.D.String(),
		DateTimeCreated: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Created %d-bit session with id %s", session.Bits, session.ID))
	return session, nil
}

// List retrieves all sessions considering a query filter
func (s *sessionService) List(ctx context.Context, query *sessions.SessionQuery) ([]*sessions.Session, error) {
	sessionList, err := s.sessionRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return sessionList, nil
}

// GetByID retrieves a session by ID
func (s *sessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return session, nil
}

// DeleteByID deletes a session by ID together with every message encrypted
// under it. Messages are removed before the session itself.
func (s *sessionService) DeleteByID(ctx context.Context, sessionID string) error {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.messageRepo.DeleteBySessionID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session messages: %w", err)
	}

	if err := s.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
