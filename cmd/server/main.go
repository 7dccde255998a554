// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-note-keeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// linker-injected version replaces the default one
	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	srv, err := newServer(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

// newServer wires services, handlers and background workers over storages.
func newServer(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (server.Server, error) {
	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("creating handlers: %w", err)
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionCleanupWorker(services.SessionService, cfg.Workers.SessionCleanupInterval, log),
	)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	return srv, nil
}
