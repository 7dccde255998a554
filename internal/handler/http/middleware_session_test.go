// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureAuthResult runs withSession and returns the result seen downstream.
func captureAuthResult(t *testing.T, h *Handler, req *http.Request) models.AuthResult {
	t.Helper()

	var got models.AuthResult
	called := false
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		got = utils.GetAuthResultFromContext(r.Context())
	})

	h.withSession(next).ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, called, "next handler must always be called")

	return got
}

func TestWithSession(t *testing.T) {
	tests := []struct {
		name      string
		cookie    string
		resolveFn func(ctx context.Context, id string) (models.AuthResult, error)
		wantAuth  bool
	}{
		{
			name:   "no cookie",
			cookie: "",
			resolveFn: func(_ context.Context, _ string) (models.AuthResult, error) {
				t.Fatal("must not resolve without a cookie")
				return models.AuthResult{}, nil
			},
		},
		{
			name:   "valid session",
			cookie: "tok",
			resolveFn: func(_ context.Context, id string) (models.AuthResult, error) {
				return models.AuthResult{SessionID: id, User: testUser, Authenticated: true}, nil
			},
			wantAuth: true,
		},
		{
			name:   "unknown or expired session",
			cookie: "stale",
			resolveFn: func(_ context.Context, id string) (models.AuthResult, error) {
				return models.AuthResult{SessionID: id}, nil
			},
		},
		{
			name:   "storage failure",
			cookie: "tok",
			resolveFn: func(_ context.Context, _ string) (models.AuthResult, error) {
				return models.AuthResult{}, errors.New("db down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{SessionService: &fakeSessionService{resolveSessionFn: tt.resolveFn}})

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}

			got := captureAuthResult(t, h, req)

			assert.Equal(t, tt.wantAuth, got.Authenticated)
			if tt.wantAuth {
				assert.Equal(t, testUser, got.User)
			}
		})
	}
}

func TestRequireUser_Unauthenticated(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	handler := h.requireUser(func(_ http.ResponseWriter, _ *http.Request, _ models.User) {
		t.Fatal("protected handler must not run")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgUnauthorized, rec.Body.String())
}

func TestRequireUser_PassesUser(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	var got models.User
	handler := h.requireUser(func(w http.ResponseWriter, _ *http.Request, user models.User) {
		got = user
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	handler(rec, authenticated(httptest.NewRequest(http.MethodGet, "/notes", nil)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testUser, got)
}
