// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Every statement filters by user_id, so a foreign note id
// is indistinguishable from a missing one.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Text,
		&note.CreatedAt,
		&note.IsArchived,
	)
	return note, err
}

// ListNotes fetches one page plus one extra row; the extra row only decides
// hasMore and is not returned.
func (r *noteRepository) ListNotes(ctx context.Context, query models.NotesQuery) ([]models.Note, bool, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListNotesQuery(query, r.now())
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Int64("user_id", query.UserID).
			Msg("failed to create query")
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var notes []models.Note
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		notes = make([]models.Note, 0, models.NotesPerPage+1)

		rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			note, scanErr := scanNote(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			notes = append(notes, note)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Int64("user_id", query.UserID).
			Int("page", query.Page).
			Str("age", string(query.Age)).
			Msg("failed to list notes")
		return nil, false, err
	}

	hasMore := len(notes) > models.NotesPerPage
	if hasMore {
		notes = notes[:models.NotesPerPage]
	}

	return notes, hasMore, nil
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	var note models.Note
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var err error
		note, err = scanNote(r.db.QueryRowContext(ctx, getNote, noteID, userID))
		return err
	})

	return r.singleNote(ctx, "*noteRepository.GetNote", userID, noteID, note, err)
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	created, err := scanNote(r.db.QueryRowContext(ctx, createNote, note.Title, note.Text, note.UserID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	updated, err := scanNote(r.db.QueryRowContext(ctx, updateNote, note.Title, note.Text, note.ID, note.UserID))

	return r.singleNote(ctx, "*noteRepository.UpdateNote", note.UserID, note.ID, updated, err)
}

func (r *noteRepository) ToggleArchive(ctx context.Context, userID, noteID int64) (models.Note, error) {
	toggled, err := scanNote(r.db.QueryRowContext(ctx, toggleArchive, noteID, userID))

	return r.singleNote(ctx, "*noteRepository.ToggleArchive", userID, noteID, toggled, err)
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) (int64, error) {
	deleted, err := r.exec(ctx, "*noteRepository.DeleteNote", userID, deleteNote, noteID, userID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrNoteNotFound
	}

	return deleted, nil
}

func (r *noteRepository) DeleteArchived(ctx context.Context, userID int64) (int64, error) {
	return r.exec(ctx, "*noteRepository.DeleteArchived", userID, deleteArchivedNotes, userID)
}

// singleNote maps the outcome of a single-row note statement.
func (r *noteRepository) singleNote(ctx context.Context, fn string, userID, noteID int64, note models.Note, err error) (models.Note, error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("note statement failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

func (r *noteRepository) exec(ctx context.Context, fn string, userID int64, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
