// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the note-keeper server. Request handlers
// get their logger from the request context, which the trace-ID middleware
// populates; background code receives a *Logger explicitly.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the usual level methods are available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout, tagged with role.
func NewLogger(role string) *Logger {
	return NewLoggerWithWriter(role, os.Stdout)
}

// NewLoggerWithWriter is NewLogger with a custom destination. Entries carry
// role, time and the calling function name under "func".
func NewLoggerWithWriter(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver so fields can be added without
// touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithUserID returns a copy of ctx whose logger tags every entry with
// user_id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	l := log.Ctx(ctx).With().Int64("user_id", userID).Logger()
	return l.WithContext(ctx)
}
