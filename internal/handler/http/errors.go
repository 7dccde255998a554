// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a note request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidNoteID is returned when the {id} URL parameter is not a
	// positive integer.
	ErrInvalidNoteID = errors.New("invalid note id in URL")
)
