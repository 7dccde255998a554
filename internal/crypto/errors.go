// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
	// candidate password does not produce the stored digest.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrHashingPassword is returned when a digest cannot be computed.
	ErrHashingPassword = errors.New("error hashing password")
)
