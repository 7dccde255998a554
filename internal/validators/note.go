// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants accepted by [NoteValidator] to restrict validation to
// a subset of fields.
const (
	FieldUserID = "user_id"
	FieldNoteID = "note_id"
	FieldTitle  = "title"
	FieldText   = "text"
	FieldPage   = "page"
	FieldAge    = "age"
)

// Length limits mirror the VARCHAR sizes of the notes table. They count
// characters, not bytes.
const (
	MaxTitleLength = 255
	MaxTextLength  = 1000
)

// NoteValidator implements [Validator] for notes, note input and listing
// queries. Both value and pointer forms are accepted.
type NoteValidator struct{}

// NewNoteValidator constructs a [NoteValidator].
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types and their default fields:
//   - models.Note: user_id, note_id, title, text
//   - models.NoteInput: title, text
//   - models.NotesQuery: user_id, page, age
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.NoteInput:
		return v.validateNoteInput(value, fields...)
	case *models.NoteInput:
		return v.validateNoteInput(*value, fields...)

	case models.NotesQuery:
		return v.validateNotesQuery(value, fields...)
	case *models.NotesQuery:
		return v.validateNotesQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNoteID, FieldTitle, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if note.ID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldTitle:
			if err := validateTitle(note.Title); err != nil {
				return err
			}
		case FieldText:
			if err := validateText(note.Text); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteInput(input models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(input.Title); err != nil {
				return err
			}
		case FieldText:
			if err := validateText(input.Text); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNotesQuery(query models.NotesQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPage, FieldAge}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if query.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPage:
			if query.Page < 1 {
				return ErrInvalidPage
			}
		case FieldAge:
			if models.ParseAgeFilter(string(query.Age)) != query.Age {
				return ErrInvalidAge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < 1 || n > MaxTitleLength {
		return ErrInvalidTitle
	}
	return nil
}

func validateText(text string) error {
	if n := utf8.RuneCountInString(text); n < 1 || n > MaxTextLength {
		return ErrInvalidText
	}
	return nil
}
