// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService registers accounts and verifies credentials.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// SessionService issues, resolves and revokes opaque session tokens.
type SessionService interface {
	CreateSession(ctx context.Context, user models.User) (models.Session, error)

	// ResolveSession never fails for an unknown or expired token; it
	// returns an unauthenticated result instead. The error is reserved for
	// storage failures.
	ResolveSession(ctx context.Context, sessionID string) (models.AuthResult, error)

	DeleteSession(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context) (int64, error)

	// TTL is the lifetime of newly created sessions.
	TTL() time.Duration
}

// NoteService manages the notes of a single owner per call.
type NoteService interface {
	ListNotes(ctx context.Context, query models.NotesQuery) (models.NotesPage, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, input models.NoteInput) (models.Note, error)
	ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) (int64, error)
	DeleteArchived(ctx context.Context, userID int64) (int64, error)
}

// ExportService turns notes into downloadable documents.
type ExportService interface {
	ExportNotePDF(ctx context.Context, userID, noteID int64) (models.NoteExport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
