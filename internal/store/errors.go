// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a username lookup matches no account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionAlreadyExists is returned when a freshly generated session
	// token collides with a stored one.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrSessionNotFound is returned when a token is unknown or expired.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user.
	ErrNoteNotFound = errors.New("note was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrNilDB is returned when a repository is used without a connection.
	ErrNilDB = errors.New("database connection is nil")
)
