// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the private implementation of [PasswordHasher].
//
// Every password is first peppered with HMAC-SHA256 keyed by a server-side
// secret and then hashed with bcrypt, which adds a per-user random salt.
type bcryptHasher struct {
	pepper string
	cost   int
}

// NewPasswordHasher constructs a [PasswordHasher] using bcrypt at
// [bcrypt.DefaultCost] and the given pepper.
func NewPasswordHasher(pepper string) PasswordHasher {
	return NewPasswordHasherWithCost(pepper, bcrypt.DefaultCost)
}

// NewPasswordHasherWithCost is like [NewPasswordHasher] with an explicit
// bcrypt cost. Costs outside bcrypt's range fall back to the default.
func NewPasswordHasherWithCost(pepper string, cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		pepper: pepper,
		cost:   cost,
	}
}

// Hash implements [PasswordHasher].
func (b *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(b.peppered(password)), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(digest), nil
}

// Compare implements [PasswordHasher].
func (b *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(b.peppered(password)))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}

// peppered mixes the server-side pepper into password. The hex digest also
// keeps the input under bcrypt's 72-byte limit.
func (b *bcryptHasher) peppered(password string) string {
	return utils.HashString(password, b.pepper)
}
