// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Note is a user-owned Markdown document.
//
// HTML is never stored; it is rendered from Text every time a note is read.
type Note struct {
	// ID is the server-assigned identifier.
	ID int64

	// UserID is the owner. It is immutable and never serialized.
	UserID int64

	// Title is the note heading, at most 255 characters.
	Title string

	// Text is the Markdown source, at most 1000 characters.
	Text string

	// CreatedAt is the server timestamp of creation.
	CreatedAt time.Time

	// IsArchived hides the note from the archive-filtered listing when false.
	IsArchived bool

	// HTML is the rendered form of Text.
	HTML string
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// noteJSON is the wire shape of a note. The frontend still reads "_id".
type noteJSON struct {
	ID         int64     `json:"id"`
	LegacyID   int64     `json:"_id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
	IsArchived bool      `json:"isArchived"`
	HTML       string    `json:"html"`
}

// MarshalJSON implements [json.Marshaler].
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteJSON{
		ID:         n.ID,
		LegacyID:   n.ID,
		Title:      n.Title,
		Text:       n.Text,
		Created:    n.CreatedAt,
		IsArchived: n.IsArchived,
		HTML:       n.HTML,
	})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *Note) UnmarshalJSON(b []byte) error {
	var v noteJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	n.ID = v.ID
	if n.ID == 0 {
		n.ID = v.LegacyID
	}
	n.Title = v.Title
	n.Text = v.Text
	n.CreatedAt = v.Created
	n.IsArchived = v.IsArchived
	n.HTML = v.HTML

	return nil
}

// NoteInput carries the user-editable fields of a note.
type NoteInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// NoteExport is a rendered note attachment.
type NoteExport struct {
	Filename string
	Content  []byte
}
