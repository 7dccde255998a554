// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"

	MaxUsernameLength = 255
)

// CredentialsValidator implements [Validator] for submitted login and
// signup forms.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a [CredentialsValidator].
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(creds.Username) > MaxUsernameLength {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
