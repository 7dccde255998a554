// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher digests passwords before storage and verifies them at login.
	hasher crypto.PasswordHasher

	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewCredentialsValidator(),
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// The username is looked up first so the common duplicate case fails
// without hashing; the UNIQUE constraint still decides concurrent signups.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrLoginAlreadyExists if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("username", creds.Username).Msg("invalid signup data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	switch {
	case err == nil:
		log.Info().Str("username", creds.Username).Msg("username is already taken")
		return models.User{}, store.ErrLoginAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Username: creds.Username, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrNoUserWasFound if no such account exists.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("username", creds.Username).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, creds.Password); err != nil {
		log.Err(err).
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}
