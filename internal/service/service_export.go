// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/render"
	"github.com/MKhiriev/go-note-keeper/models"
)

type exportService struct {
	noteService NoteService
	pdf         render.PDFRenderer

	logger *logger.Logger
}

// NewExportService builds PDFs from notes loaded through noteService, so
// ownership and validation rules are the same as for reading a note.
func NewExportService(noteService NoteService, pdf render.PDFRenderer, logger *logger.Logger) ExportService {
	return &exportService{
		noteService: noteService,
		pdf:         pdf,
		logger:      logger,
	}
}

func (s *exportService) ExportNotePDF(ctx context.Context, userID, noteID int64) (models.NoteExport, error) {
	note, err := s.noteService.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.NoteExport{}, err
	}

	content, err := s.pdf.Render(ctx, note.Title, note.HTML)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("note_id", noteID).
			Msg("pdf rendering failed")
		return models.NoteExport{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return models.NoteExport{
		Filename: fmt.Sprintf("note-%d.pdf", note.ID),
		Content:  content,
	}, nil
}
