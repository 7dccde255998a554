// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

const sessionCookieName = "sessionId"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds := credentialsFromForm(r)

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Str("username", creds.Username).Msg("login failed")
		http.Redirect(w, r, app.RedirectAuthError, http.StatusFound)
		return
	}

	session, err := h.services.SessionService.CreateSession(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Int64("user_id", user.UserID).Msg("session creation failed")
		http.Redirect(w, r, app.RedirectAuthError, http.StatusFound)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")

	h.setSessionCookie(w, session)
	http.Redirect(w, r, app.RedirectDashboard, http.StatusFound)
}

// signup registers a user, seeds the demo note and logs the user in.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds := credentialsFromForm(r)

	user, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signup").Str("username", creds.Username).Msg("registration failed")
		http.Redirect(w, r, app.RedirectAuthError, http.StatusFound)
		return
	}

	if _, err = h.services.NoteService.CreateNote(ctx, user.UserID, service.DemoNote()); err != nil {
		log.Err(err).Str("func", "*Handler.signup").Int64("user_id", user.UserID).Msg("demo note creation failed")
		http.Redirect(w, r, app.RedirectAuthError, http.StatusFound)
		return
	}

	session, err := h.services.SessionService.CreateSession(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signup").Int64("user_id", user.UserID).Msg("session creation failed")
		http.Redirect(w, r, app.RedirectAuthError, http.StatusFound)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")

	h.setSessionCookie(w, session)
	http.Redirect(w, r, app.RedirectDashboard, http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		if err = h.services.SessionService.DeleteSession(r.Context(), cookie.Value); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.logout").Msg("session deletion failed")
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, app.RedirectHome, http.StatusFound)
}

func credentialsFromForm(r *http.Request) models.Credentials {
	return models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	maxAge := int(h.services.SessionService.TTL() / time.Second)
	if maxAge <= 0 {
		maxAge = int(time.Until(session.ExpiresAt) / time.Second)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
