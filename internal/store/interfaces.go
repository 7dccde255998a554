// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A taken username yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrNoUserWasFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionRepository persists opaque session tokens.
type SessionRepository interface {
	// CreateSession stores session. A token collision yields
	// [ErrSessionAlreadyExists].
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// FindUserBySession resolves a live session to its owner. Missing and
	// expired sessions yield [ErrSessionNotFound].
	FindUserBySession(ctx context.Context, sessionID string) (models.User, error)

	// DeleteSession removes a session. Deleting an unknown token is not an
	// error.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpired removes every expired session and returns how many were
	// removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// NoteRepository persists notes. Every method is scoped to the owning user;
// a note owned by somebody else behaves as if it did not exist.
type NoteRepository interface {
	// ListNotes returns at most [models.NotesPerPage] notes matching query
	// and whether more notes follow.
	ListNotes(ctx context.Context, query models.NotesQuery) ([]models.Note, bool, error)

	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote replaces the title and text of note.ID owned by note.UserID.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ToggleArchive flips is_archived in a single statement.
	ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error)

	// DeleteNote returns [ErrNoteNotFound] when nothing was deleted.
	DeleteNote(ctx context.Context, userID, noteID int64) (int64, error)

	// DeleteArchived removes all archived notes of userID.
	DeleteArchived(ctx context.Context, userID int64) (int64, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
