// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash must never leave the server.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique, non-empty login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the peppered password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair submitted on login and signup.
type Credentials struct {
	Username string
	Password string
}
