// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService rejects malformed requests before they reach the
// wrapped [NoteService]. Every rejection wraps [ErrInvalidDataProvided].
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, query models.NotesQuery) (models.NotesPage, error) {
	if err := v.validate(ctx, query); err != nil {
		return models.NotesPage{}, err
	}

	return v.inner.ListNotes(ctx, query)
}

func (v *NoteValidationService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if err := v.validateIDs(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, userID int64, input models.NoteInput) (models.Note, error) {
	if err := v.validate(ctx, models.Note{UserID: userID}, validators.FieldUserID); err != nil {
		return models.Note{}, err
	}
	if err := v.validate(ctx, input); err != nil {
		return models.Note{}, err
	}

	return v.inner.CreateNote(ctx, userID, input)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, userID, noteID int64, input models.NoteInput) (models.Note, error) {
	if err := v.validateIDs(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}
	if err := v.validate(ctx, input); err != nil {
		return models.Note{}, err
	}

	return v.inner.UpdateNote(ctx, userID, noteID, input)
}

func (v *NoteValidationService) ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if err := v.validateIDs(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}

	return v.inner.ToggleArchive(ctx, userID, noteID)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID, noteID int64) (int64, error) {
	if err := v.validateIDs(ctx, userID, noteID); err != nil {
		return 0, err
	}

	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *NoteValidationService) DeleteArchived(ctx context.Context, userID int64) (int64, error) {
	if err := v.validate(ctx, models.Note{UserID: userID}, validators.FieldUserID); err != nil {
		return 0, err
	}

	return v.inner.DeleteArchived(ctx, userID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

func (v *NoteValidationService) validateIDs(ctx context.Context, userID, noteID int64) error {
	return v.validate(ctx, models.Note{ID: noteID, UserID: userID}, validators.FieldUserID, validators.FieldNoteID)
}

func (v *NoteValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
