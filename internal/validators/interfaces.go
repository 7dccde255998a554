// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes and submitted credentials before they
// reach storage. See [NewNoteValidator] and [NewCredentialsValidator].
package validators

import "context"

// Validator checks obj. When fields are given, only those fields are
// checked; otherwise every rule applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
