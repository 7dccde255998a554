// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingRunner struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (b *blockingRunner) Run(ctx context.Context) {
	b.started.Store(true)
	<-ctx.Done()
	b.stopped.Store(true)
}

func newTestServer(t *testing.T, address string, workers BackgroundRunner) Server {
	t.Helper()

	cfg := config.Server{HTTPAddress: address, RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, workers, cfg, logger.Nop())
	require.NoError(t, err)

	return srv
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, nil, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, srv)
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	workers := &blockingRunner{}
	srv := newTestServer(t, "127.0.0.1:0", workers)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	assert.Eventually(t, workers.started.Load, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, workers.stopped.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	workers := &blockingRunner{}
	srv := newTestServer(t, "127.0.0.1:-1", workers)

	select {
	case err := <-runAsync(srv):
		assert.Error(t, err)
		assert.True(t, workers.stopped.Load() || !workers.started.Load())
	case <-time.After(5 * time.Second):
		t.Fatal("server did not fail")
	}
}

func runAsync(srv Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(context.Background()) }()
	return done
}
