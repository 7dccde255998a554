// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/render"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	repo := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(repo, render.NewMarkdownRenderer(), logger.Nop()), repo
}

func TestNoteService_ListNotes_RendersAndPaginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	query := models.NotesQuery{UserID: 1, Page: 2, Age: models.AgeAllTime}
	repo.EXPECT().ListNotes(gomock.Any(), query).Return([]models.Note{
		{ID: 21, UserID: 1, Title: "a", Text: "**bold**"},
	}, false, nil)

	page, err := svc.ListNotes(context.Background(), query)
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Contains(t, page.Data[0].HTML, "<strong>bold</strong>")
	assert.False(t, page.HasMore)
	assert.Equal(t, models.Pagination{PerPage: 20, CurrentPage: 2, From: 20, To: 21}, page.Pagination)
}

func TestNoteService_ListNotes_HasMore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	notes := make([]models.Note, models.NotesPerPage)
	for i := range notes {
		notes[i] = models.Note{ID: int64(i + 1), UserID: 1, Title: "t", Text: "x"}
	}
	repo.EXPECT().ListNotes(gomock.Any(), gomock.Any()).Return(notes, true, nil)

	page, err := svc.ListNotes(context.Background(), models.NotesQuery{UserID: 1, Page: 1, Age: models.AgeAllTime})
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Len(t, page.Data, models.NotesPerPage)
	assert.Equal(t, 0, page.Pagination.From)
	assert.Equal(t, 20, page.Pagination.To)
}

func TestNoteService_ListNotes_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().ListNotes(gomock.Any(), gomock.Any()).Return(nil, false, store.ErrExecutingQuery)

	_, err := svc.ListNotes(context.Background(), models.NotesQuery{UserID: 1, Page: 1})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestNoteService_ListNotes_RenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	markdown := mock.NewMockMarkdownRenderer(ctrl)
	svc := NewNoteService(repo, markdown, logger.Nop())

	repo.EXPECT().ListNotes(gomock.Any(), gomock.Any()).Return([]models.Note{{ID: 1, Text: "x"}}, false, nil)
	markdown.EXPECT().Render("x").Return("", render.ErrRenderFailed)

	_, err := svc.ListNotes(context.Background(), models.NotesQuery{UserID: 1, Page: 1})
	assert.ErrorIs(t, err, render.ErrRenderFailed)
}

func TestNoteService_GetNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().GetNote(gomock.Any(), int64(1), int64(5)).Return(models.Note{ID: 5, UserID: 1, Text: "# h"}, nil)

	note, err := svc.GetNote(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Contains(t, note.HTML, "<h1>h</h1>")
}

func TestNoteService_GetNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().GetNote(gomock.Any(), int64(2), int64(5)).Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(context.Background(), 2, 5)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_CreateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().CreateNote(gomock.Any(), models.Note{UserID: 1, Title: "t", Text: "x"}).
		Return(models.Note{ID: 9, UserID: 1, Title: "t", Text: "x"}, nil)

	note, err := svc.CreateNote(context.Background(), 1, models.NoteInput{Title: "t", Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), note.ID)
	assert.False(t, note.IsArchived)
	assert.Contains(t, note.HTML, "<p>x</p>")
}

func TestNoteService_UpdateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().UpdateNote(gomock.Any(), models.Note{ID: 9, UserID: 1, Title: "new", Text: "body"}).
		Return(models.Note{ID: 9, UserID: 1, Title: "new", Text: "body"}, nil)

	note, err := svc.UpdateNote(context.Background(), 1, 9, models.NoteInput{Title: "new", Text: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", note.Title)
}

func TestNoteService_ToggleArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().ToggleArchive(gomock.Any(), int64(1), int64(9)).Return(models.Note{ID: 9, IsArchived: true, Text: "x"}, nil)

	note, err := svc.ToggleArchive(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.True(t, note.IsArchived)
}

func TestNoteService_DeleteNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().DeleteNote(gomock.Any(), int64(1), int64(9)).Return(int64(1), nil)
	deleted, err := svc.DeleteNote(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	repo.EXPECT().DeleteNote(gomock.Any(), int64(1), int64(10)).Return(int64(0), store.ErrNoteNotFound)
	_, err = svc.DeleteNote(context.Background(), 1, 10)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_DeleteArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNoteSvc(t, ctrl)

	repo.EXPECT().DeleteArchived(gomock.Any(), int64(1)).Return(int64(3), nil)
	deleted, err := svc.DeleteArchived(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	dbErr := errors.New("boom")
	repo.EXPECT().DeleteArchived(gomock.Any(), int64(1)).Return(int64(0), dbErr)
	_, err = svc.DeleteArchived(context.Background(), 1)
	assert.ErrorIs(t, err, dbErr)
}
