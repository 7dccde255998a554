// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    BackgroundRunner
	logger     *logger.Logger
}

// NewServer builds the HTTP server over handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.httpServer.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
	}

	// stop workers
	cancel()
	wg.Wait()

	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
