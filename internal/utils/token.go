// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// SessionTokenBytes is the entropy of a session token.
const SessionTokenBytes = 32

// GenerateSessionToken returns a URL-safe, unpadded base64 string encoding
// SessionTokenBytes bytes read from the OS CSPRNG.
func GenerateSessionToken() (string, error) {
	return generateToken(rand.Reader, SessionTokenBytes)
}

func generateToken(r io.Reader, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
