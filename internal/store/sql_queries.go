// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createSession = `INSERT INTO sessions (session_id, user_id, expires_at)
    VALUES ($1, $2, $3)
    RETURNING session_id, user_id, created_at, expires_at;`

	findUserBySession = `SELECT u.id, u.username, u.password_hash, u.created_at
    FROM sessions s
    JOIN users u ON u.id = s.user_id
    WHERE s.session_id = $1 AND s.expires_at > $2;`

	deleteSession = `DELETE FROM sessions
    WHERE session_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= $1;`

	getNote = `SELECT id, user_id, title, text, created_at, is_archived
    FROM notes
    WHERE id = $1 AND user_id = $2;`

	createNote = `INSERT INTO notes (title, text, user_id)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, title, text, created_at, is_archived;`

	updateNote = `UPDATE notes
    SET title = $1, text = $2
    WHERE id = $3 AND user_id = $4
    RETURNING id, user_id, title, text, created_at, is_archived;`

	toggleArchive = `UPDATE notes
    SET is_archived = NOT is_archived
    WHERE id = $1 AND user_id = $2
    RETURNING id, user_id, title, text, created_at, is_archived;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1 AND user_id = $2;`

	deleteArchivedNotes = `DELETE FROM notes
    WHERE user_id = $1 AND is_archived;`
)

var noteColumns = []string{"id", "user_id", "title", "text", "created_at", "is_archived"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListNotesQuery builds one page of a user's note listing. It asks for
// one row more than a page so the caller can tell whether another page
// follows.
func buildListNotesQuery(query models.NotesQuery, now time.Time) (string, []any, error) {
	builder := sq.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": query.UserID})

	if query.Age.ArchivedOnly() {
		builder = builder.Where(sq.Eq{"is_archived": true})
	}

	if since, ok := query.Age.Since(now); ok {
		builder = builder.Where(sq.GtOrEq{"created_at": since})
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"text": pattern},
		})
	}

	return builder.
		OrderBy("id ASC").
		Limit(uint64(models.NotesPerPage + 1)).
		Offset(uint64(query.Offset())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
