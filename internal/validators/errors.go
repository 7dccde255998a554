// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidNoteID   = errors.New("invalid note ID")
	ErrInvalidTitle    = errors.New("title must be 1 to 255 characters")
	ErrInvalidText     = errors.New("text must be 1 to 1000 characters")
	ErrInvalidPage     = errors.New("page must be positive")
	ErrInvalidAge      = errors.New("unknown age filter")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidUsername = errors.New("username is too long")
)
