// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	target   error
	response errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgBadRequest}},
	{ErrInvalidNoteID, errorResponse{http.StatusBadRequest, app.MsgBadRequest}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgBadRequest}},
	{service.ErrExportFailed, errorResponse{http.StatusNotFound, app.MsgServerError}},
}

var defaultErrorResponse = errorResponse{http.StatusNotFound, app.MsgBadRequest}

// responseFromError maps an error returned by the note, session or export
// services onto the response sent to the client. Unknown errors, missing
// notes and foreign notes all produce the same 404 reply.
func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.response
		}
	}
	return defaultErrorResponse
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	resp := responseFromError(err)

	logger.FromRequest(r).Err(err).
		Str("func", funcName).
		Int("status", resp.status).
		Msg("request failed")

	utils.WriteText(w, resp.message, resp.status)
}
