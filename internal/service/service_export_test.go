// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
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

func newTestExportSvc(t *testing.T, ctrl *gomock.Controller) (ExportService, *mock.MockNoteRepository, *mock.MockPDFRenderer) {
	t.Helper()
	notes, repo := newTestNoteSvc(t, ctrl)
	pdf := mock.NewMockPDFRenderer(ctrl)
	return NewExportService(notes, pdf, logger.Nop()), repo, pdf
}

func TestExportService_ExportNotePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, pdf := newTestExportSvc(t, ctrl)

	repo.EXPECT().GetNote(gomock.Any(), int64(1), int64(4)).Return(models.Note{ID: 4, UserID: 1, Title: "T", Text: "*hi*"}, nil)
	pdf.EXPECT().Render(gomock.Any(), "T", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, html string) ([]byte, error) {
			assert.Contains(t, html, "<em>hi</em>")
			return []byte("%PDF-1.3"), nil
		})

	export, err := svc.ExportNotePDF(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "note-4.pdf", export.Filename)
	assert.Equal(t, []byte("%PDF-1.3"), export.Content)
}

func TestExportService_ExportNotePDF_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestExportSvc(t, ctrl)

	repo.EXPECT().GetNote(gomock.Any(), int64(2), int64(4)).Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.ExportNotePDF(context.Background(), 2, 4)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
	assert.NotErrorIs(t, err, ErrExportFailed)
}

func TestExportService_ExportNotePDF_RenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, pdf := newTestExportSvc(t, ctrl)

	repo.EXPECT().GetNote(gomock.Any(), int64(1), int64(4)).Return(models.Note{ID: 4, UserID: 1, Title: "T", Text: "x"}, nil)
	pdf.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, render.ErrRenderFailed)

	_, err := svc.ExportNotePDF(context.Background(), 1, 4)
	assert.ErrorIs(t, err, ErrExportFailed)
	assert.ErrorIs(t, err, render.ErrRenderFailed)
}
