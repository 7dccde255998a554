// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages groups every repository backed by a single connection pool.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	NoteRepository    NoteRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories. The returned Storages must be closed by the caller.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		NoteRepository:    NewNoteRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
