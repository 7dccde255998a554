// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// maxSessionTokenAttempts bounds retries after a token collision.
const maxSessionTokenAttempts = 3

type sessionService struct {
	sessionRepository store.SessionRepository
	ttl               time.Duration

	newToken func() (string, error)
	now      func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService issuing tokens that live for
// cfg.SessionTTL.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ttl:               cfg.SessionTTL,
		newToken:          utils.GenerateSessionToken,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateSession stores a fresh random token for user. A colliding token is
// never reused; a new one is drawn instead.
func (s *sessionService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxSessionTokenAttempts; attempt++ {
		token, err := s.newToken()
		if err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("session token generation failed")
			return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
		}

		session, err := s.sessionRepository.CreateSession(ctx, models.Session{
			ID:        token,
			UserID:    user.UserID,
			ExpiresAt: s.now().Add(s.ttl),
		})
		if errors.Is(err, store.ErrSessionAlreadyExists) {
			log.Warn().Int("attempt", attempt).Int64("user_id", user.UserID).Msg("session token collision")
			continue
		}
		if err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("session persisting failed")
			return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
		}

		return session, nil
	}

	return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, store.ErrSessionAlreadyExists)
}

func (s *sessionService) ResolveSession(ctx context.Context, sessionID string) (models.AuthResult, error) {
	if sessionID == "" {
		return models.AuthResult{}, nil
	}

	result := models.AuthResult{SessionID: sessionID}

	user, err := s.sessionRepository.FindUserBySession(ctx, sessionID)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return result, nil
	case err != nil:
		return result, fmt.Errorf("session lookup failed: %w", err)
	}

	result.User = user
	result.Authenticated = true

	return result, nil
}

// DeleteSession is idempotent.
func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.sessionRepository.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("expired sessions purge failed: %w", err)
	}

	return deleted, nil
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}
