// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the authentication result in a context,
// keyed hashing, HTTP response writing, and session token generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthResultCtxKey is the key under which the session middleware stores
// the [models.AuthResult] of the current request.
var AuthResultCtxKey = contextKey("authResult")

// WithAuthResult returns a copy of ctx carrying res.
func WithAuthResult(ctx context.Context, res models.AuthResult) context.Context {
	return context.WithValue(ctx, AuthResultCtxKey, res)
}

// GetAuthResultFromContext retrieves the authentication result from the
// context. A missing value yields the zero (unauthenticated) result.
func GetAuthResultFromContext(ctx context.Context) models.AuthResult {
	res, _ := ctx.Value(AuthResultCtxKey).(models.AuthResult)
	return res
}

// GetUserFromContext returns the authenticated user and ok == true, or a
// zero user and ok == false when the request is unauthenticated.
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // respond 401
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	res := GetAuthResultFromContext(ctx)
	if !res.Authenticated {
		return models.User{}, false
	}
	return res.User, true
}
