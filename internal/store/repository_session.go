// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
)

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewSessionRepository constructs a PostgreSQL-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.ID, session.UserID, session.ExpiresAt)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("error inserting session")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Session{}, ErrSessionAlreadyExists
		default:
			return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var created models.Session
	if err := row.Scan(&created.ID, &created.UserID, &created.CreatedAt, &created.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *sessionRepository) FindUserBySession(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, findUserBySession, sessionID, r.now())
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrSessionNotFound
	case err != nil:
		log.Err(err).Str("func", "*sessionRepository.FindUserBySession").Msg("error resolving session")
		return models.User{}, err
	}

	return user, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, deleteSession, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var deleted int64
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, deleteExpiredSessions, r.now())
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
