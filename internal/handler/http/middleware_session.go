// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// withSession resolves the sessionId cookie and stores the resulting
// [models.AuthResult] in the request context under [utils.AuthResultCtxKey].
//
// A missing, unknown or expired cookie is not an error: the request continues
// unauthenticated and individual routes decide whether a user is required.
// Storage failures are logged and treated the same way.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithAuthResult(ctx, models.AuthResult{})))
			return
		}

		result, err := h.services.SessionService.ResolveSession(ctx, cookie.Value)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withSession").Msg("session resolution failed")
			result = models.AuthResult{}
		}

		ctx = utils.WithAuthResult(ctx, result)
		if result.Authenticated {
			ctx = logger.WithUserID(ctx, result.User.UserID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userHandlerFunc is a handler that runs only for authenticated requests.
type userHandlerFunc func(w http.ResponseWriter, r *http.Request, user models.User)

// requireUser adapts next into an [http.HandlerFunc] that answers 401 when
// the request carries no authenticated user.
func (h *Handler) requireUser(next userHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("unauthenticated request to protected route")
			utils.WriteText(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		next(w, r, user)
	}
}
