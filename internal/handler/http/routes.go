// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	// form authentication
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/signup", h.signup)
		r.Get("/logout", h.logout)
	})

	// notes of the authenticated user
	router.Group(func(r chi.Router) {
		r.Get("/notes", h.requireUser(h.listNotes))
		r.Post("/notes", h.requireUser(h.createNote))
		r.Delete("/notes", h.requireUser(h.deleteArchivedNotes))

		r.Get("/notes/{id}", h.requireUser(h.getNote))
		r.Put("/notes/{id}", h.requireUser(h.toggleArchive))
		r.Patch("/notes/{id}", h.requireUser(h.updateNote))
		r.Delete("/notes/{id}", h.requireUser(h.deleteNote))

		r.Get("/notes/{id}/pdf", h.requireUser(h.exportNotePDF))
	})

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
