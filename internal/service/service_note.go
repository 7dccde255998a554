// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/render"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService implements [NoteService] on top of a [store.NoteRepository].
// Every note it returns carries HTML rendered from its Markdown text.
type noteService struct {
	noteRepository store.NoteRepository
	markdown       render.MarkdownRenderer

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, markdown render.MarkdownRenderer, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		markdown:       markdown,
		logger:         logger,
	}
}

// ListNotes returns one page of the owner's notes. Pagination.From is the
// number of notes before the page and Pagination.To the number up to and
// including its last note.
func (s *noteService) ListNotes(ctx context.Context, query models.NotesQuery) (models.NotesPage, error) {
	notes, hasMore, err := s.noteRepository.ListNotes(ctx, query)
	if err != nil {
		return models.NotesPage{}, fmt.Errorf("error listing notes: %w", err)
	}

	for i := range notes {
		if err = s.renderHTML(&notes[i]); err != nil {
			return models.NotesPage{}, err
		}
	}

	offset := query.Offset()

	return models.NotesPage{
		Data:    notes,
		HasMore: hasMore,
		Pagination: models.Pagination{
			PerPage:     models.NotesPerPage,
			CurrentPage: query.Page,
			From:        offset,
			To:          offset + len(notes),
		},
	}, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note: %w", err)
	}

	return note, s.renderHTML(&note)
}

func (s *noteService) CreateNote(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error) {
	note, err := s.noteRepository.CreateNote(ctx, models.Note{
		UserID: userID,
		Title:  input.Title,
		Text:   input.Text,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("note_id", note.ID).Msg("note created")

	return note, s.renderHTML(&note)
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID int64, input models.NoteInput) (models.Note, error) {
	note, err := s.noteRepository.UpdateNote(ctx, models.Note{
		ID:     noteID,
		UserID: userID,
		Title:  input.Title,
		Text:   input.Text,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("error updating note: %w", err)
	}

	return note, s.renderHTML(&note)
}

func (s *noteService) ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.ToggleArchive(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error toggling archive: %w", err)
	}

	return note, s.renderHTML(&note)
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID int64) (int64, error) {
	deleted, err := s.noteRepository.DeleteNote(ctx, userID, noteID)
	if err != nil {
		return 0, fmt.Errorf("error deleting note: %w", err)
	}

	return deleted, nil
}

func (s *noteService) DeleteArchived(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.noteRepository.DeleteArchived(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error deleting archived notes: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("deleted", deleted).Msg("archived notes deleted")

	return deleted, nil
}

func (s *noteService) renderHTML(note *models.Note) error {
	html, err := s.markdown.Render(note.Text)
	if err != nil {
		return fmt.Errorf("error rendering note %d: %w", note.ID, err)
	}

	note.HTML = html
	return nil
}
