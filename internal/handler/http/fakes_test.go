// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type fakeAuthService struct {
	registerUserFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	return f.registerUserFn(ctx, creds)
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return f.loginFn(ctx, creds)
}

type fakeSessionService struct {
	createSessionFn  func(ctx context.Context, user models.User) (models.Session, error)
	resolveSessionFn func(ctx context.Context, sessionID string) (models.AuthResult, error)
	deleteSessionFn  func(ctx context.Context, sessionID string) error
	ttl              time.Duration
}

func (f *fakeSessionService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	return f.createSessionFn(ctx, user)
}

func (f *fakeSessionService) ResolveSession(ctx context.Context, sessionID string) (models.AuthResult, error) {
	if f.resolveSessionFn == nil {
		return models.AuthResult{}, nil
	}
	return f.resolveSessionFn(ctx, sessionID)
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return f.deleteSessionFn(ctx, sessionID)
}

func (f *fakeSessionService) PurgeExpired(_ context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeSessionService) TTL() time.Duration {
	return f.ttl
}

type fakeNoteService struct {
	listNotesFn      func(ctx context.Context, query models.NotesQuery) (models.NotesPage, error)
	getNoteFn        func(ctx context.Context, userID, noteID int64) (models.Note, error)
	createNoteFn     func(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error)
	updateNoteFn     func(ctx context.Context, userID, noteID int64, input models.NoteInput) (models.Note, error)
	toggleArchiveFn  func(ctx context.Context, userID, noteID int64) (models.Note, error)
	deleteNoteFn     func(ctx context.Context, userID, noteID int64) (int64, error)
	deleteArchivedFn func(ctx context.Context, userID int64) (int64, error)
}

func (f *fakeNoteService) ListNotes(ctx context.Context, query models.NotesQuery) (models.NotesPage, error) {
	return f.listNotesFn(ctx, query)
}

func (f *fakeNoteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return f.getNoteFn(ctx, userID, noteID)
}

func (f *fakeNoteService) CreateNote(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error) {
	return f.createNoteFn(ctx, userID, input)
}

func (f *fakeNoteService) UpdateNote(ctx context.Context, userID, noteID int64, input models.NoteInput) (models.Note, error) {
	return f.updateNoteFn(ctx, userID, noteID, input)
}

func (f *fakeNoteService) ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return f.toggleArchiveFn(ctx, userID, noteID)
}

func (f *fakeNoteService) DeleteNote(ctx context.Context, userID, noteID int64) (int64, error) {
	return f.deleteNoteFn(ctx, userID, noteID)
}

func (f *fakeNoteService) DeleteArchived(ctx context.Context, userID int64) (int64, error) {
	return f.deleteArchivedFn(ctx, userID)
}

type fakeExportService struct {
	exportNotePDFFn func(ctx context.Context, userID, noteID int64) (models.NoteExport, error)
}

func (f *fakeExportService) ExportNotePDF(ctx context.Context, userID, noteID int64) (models.NoteExport, error) {
	return f.exportNotePDFFn(ctx, userID, noteID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testUser is the authenticated user injected into protected handlers.
var testUser = models.User{UserID: 7, Username: "alice"}

func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	if svcs.SessionService == nil {
		svcs.SessionService = &fakeSessionService{ttl: time.Hour}
	}
	return NewHandler(svcs, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

// withNoteID attaches chi URL parameters so that handlers can be called
// without going through the router.
func withNoteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// authenticated marks r as coming from testUser.
func authenticated(r *http.Request) *http.Request {
	return r.WithContext(utils.WithAuthResult(r.Context(), models.AuthResult{
		SessionID:     "session-token",
		User:          testUser,
		Authenticated: true,
	}))
}

func configForTests() config.Server {
	return config.Server{RequestTimeout: 5 * time.Second}
}
