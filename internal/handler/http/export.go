// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// exportNotePDF serves GET /notes/{id}/pdf as a file download.
func (h *Handler) exportNotePDF(w http.ResponseWriter, r *http.Request, user models.User) {
	noteID, err := noteIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.exportNotePDF")
		return
	}

	export, err := h.services.ExportService.ExportNotePDF(r.Context(), user.UserID, noteID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.exportNotePDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(export.Content); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.exportNotePDF").Msg("writing pdf to response failed")
	}
}
