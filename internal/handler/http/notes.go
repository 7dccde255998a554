// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listNotes serves GET /notes?age=&search=&page=. A missing or malformed
// page falls back to the first one and an unknown age to "alltime".
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request, user models.User) {
	params := r.URL.Query()

	query := models.NotesQuery{
		UserID: user.UserID,
		Page:   pageFromQuery(params.Get("page")),
		Age:    models.ParseAgeFilter(params.Get("age")),
		Search: params.Get("search"),
	}

	page, err := h.services.NoteService.ListNotes(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listNotes")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request, user models.User) {
	input, err := decodeNoteInput(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createNote")
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), user.UserID, input)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request, user models.User) {
	noteID, err := noteIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getNote")
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), user.UserID, noteID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request, user models.User) {
	noteID, err := noteIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateNote")
		return
	}

	input, err := decodeNoteInput(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateNote")
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), user.UserID, noteID, input)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// toggleArchive serves PUT /notes/{id}, flipping the archived flag.
func (h *Handler) toggleArchive(w http.ResponseWriter, r *http.Request, user models.User) {
	noteID, err := noteIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.toggleArchive")
		return
	}

	note, err := h.services.NoteService.ToggleArchive(r.Context(), user.UserID, noteID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.toggleArchive")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request, user models.User) {
	noteID, err := noteIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	deleted, err := h.services.NoteService.DeleteNote(r.Context(), user.UserID, noteID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

func (h *Handler) deleteArchivedNotes(w http.ResponseWriter, r *http.Request, user models.User) {
	deleted, err := h.services.NoteService.DeleteArchived(r.Context(), user.UserID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteArchivedNotes")
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

// pageFromQuery parses the page parameter. Missing or invalid values mean
// the first page; values beyond models.MaxPage are clamped to it.
func pageFromQuery(raw string) int {
	page, err := strconv.Atoi(raw)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-"):
		return models.MaxPage
	case err != nil || page < 1:
		return 1
	default:
		return min(page, models.MaxPage)
	}
}

func noteIDFromURL(r *http.Request) (int64, error) {
	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || noteID < 1 {
		return 0, ErrInvalidNoteID
	}
	return noteID, nil
}

func decodeNoteInput(r *http.Request) (models.NoteInput, error) {
	var input models.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return models.NoteInput{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return input, nil
}
