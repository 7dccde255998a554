// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrExportFailed          = errors.New("note export failed")
)
