// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled or the listener fails, then shuts
// everything down gracefully.
type Server interface {
	RunServer(ctx context.Context) error
}

// BackgroundRunner runs background work until ctx is cancelled.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
