// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the PostgreSQL schema (users, sessions, notes)
// and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schema embed.FS

const dialect = "pgx"

var errNilDB = errors.New("migrate: nil database handle")

// Migrate applies every pending embedded migration to db.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(schema)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: set dialect %s: %w", dialect, err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migrate: apply schema: %w", err)
	}

	return nil
}
