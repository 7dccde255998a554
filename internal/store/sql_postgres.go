// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	maxOpenConns   = 10
	maxIdleConns   = 4
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// DB wraps the PostgreSQL connection pool together with the error
// classifier used to retry transient failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed [sql.DB] for cfg.DSN and verifies it
// with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs op and repeats it with exponential backoff while it fails
// with an error classified as [Retryable]. Only idempotent operations may be
// passed here.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	if db.errorClassificator == nil {
		return op(ctx)
	}

	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("retrying transient database error")
			return retry.RetryableError(err)
		}
		return err
	})
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
