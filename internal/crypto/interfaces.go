// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements password hashing for stored credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable digests and
// verifies candidates against them.
type PasswordHasher interface {
	// Hash returns a salted, adaptive digest of password.
	Hash(password string) (string, error)

	// Compare returns nil if password matches hash, [ErrPasswordMismatch]
	// if it does not, or another error if hash is malformed.
	Compare(hash, password string) error
}
