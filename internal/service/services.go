// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/render"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	NoteService    NoteService
	ExportService  ExportService
	AppInfoService AppInfoService
}

// NewServices wires the business layer over storages. The note service is
// wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	markdown := render.NewMarkdownRenderer()
	noteService := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, markdown, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(cfg.App.PasswordPepper), logger),
		SessionService: NewSessionService(storages.SessionRepository, cfg.App, logger),
		NoteService:    noteService,
		ExportService:  NewExportService(noteService, render.NewPDFRenderer(), logger),
		AppInfoService: appInfoService,
	}, nil
}
