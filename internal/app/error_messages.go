// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// note keeper HTTP handlers and middleware.
//
// The Msg* constants are the user-facing response bodies. Browsers and the
// bundled frontend display them as is, so they stay in Russian.
package app

const (
	// MsgUnauthorized is returned by note routes called without a valid
	// session cookie.
	MsgUnauthorized = "Пользователь не авторизован"

	// MsgBadRequest is returned when a note operation fails: the note does
	// not exist, belongs to another user, the input is malformed, or the
	// storage rejected the request.
	MsgBadRequest = "Неверный запрос к серверу"

	// MsgServerError is returned when a PDF document could not be produced.
	MsgServerError = "Ошибка сервера"
)

// Redirect targets of the form-based authentication routes.
const (
	RedirectDashboard = "/dashboard"
	RedirectHome      = "/"
	RedirectAuthError = "/?authError=true"
)
