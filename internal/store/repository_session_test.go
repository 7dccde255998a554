// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	wrapped, mock, db := newTestDB(t)
	repo := &sessionRepository{
		db:     wrapped,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock, db
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	session := models.Session{ID: "tok", UserID: 3, ExpiresAt: fixedNow.Add(time.Hour)}

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(session.ID, session.UserID, session.ExpiresAt).
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "created_at", "expires_at"}).
			AddRow(session.ID, session.UserID, fixedNow, session.ExpiresAt))

	created, err := repo.CreateSession(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "tok", created.ID)
	assert.Equal(t, int64(3), created.UserID)
	assert.True(t, created.CreatedAt.Equal(fixedNow))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSession_Collision(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sessions").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateSession(context.Background(), models.Session{ID: "tok", UserID: 3})
	assert.ErrorIs(t, err, ErrSessionAlreadyExists)
}

func TestCreateSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sessions").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateSession(context.Background(), models.Session{ID: "tok", UserID: 3})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindUserBySession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT u.id, u.username").
		WithArgs("tok", fixedNow).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "alice", "hash", fixedNow))

	user, err := repo.FindUserBySession(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestFindUserBySession_UnknownOrExpired(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT u.id, u.username").
		WithArgs("tok", fixedNow).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserBySession(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFindUserBySession_NonRetryableError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectQuery("SELECT u.id, u.username").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserBySession(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserBySession_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectQuery("SELECT u.id, u.username").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT u.id, u.username").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "alice", "hash", fixedNow))

	user, err := repo.FindUserBySession(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteSession(context.Background(), "tok"))
}

func TestDeleteSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.DeleteSession(context.Background(), "tok"), ErrExecutingStatement)
}

func TestDeleteExpired(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestDeleteExpired_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("boom"))

	_, err := repo.DeleteExpired(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
