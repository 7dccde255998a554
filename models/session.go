// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session binds an opaque, unguessable token to a user.
type Session struct {
	// ID is the opaque token carried in the sessionId cookie.
	ID string

	// UserID references the owning user.
	UserID int64

	// CreatedAt is the moment the session was issued.
	CreatedAt time.Time

	// ExpiresAt is the moment after which the session no longer resolves.
	ExpiresAt time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// AuthResult is the outcome of resolving a request's session cookie.
// A zero AuthResult means the request is unauthenticated.
type AuthResult struct {
	// SessionID is the token the request presented, if any.
	SessionID string

	// User is the resolved owner of the session. Valid only when
	// Authenticated is true.
	User User

	// Authenticated reports whether SessionID resolved to an existing user.
	Authenticated bool
}
