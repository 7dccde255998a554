// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			PasswordPepper: "pepper",
			SessionTTL:     time.Hour,
			Version:        "1.0.0",
		},
		Server: config.Server{
			HTTPAddress:    "localhost:0",
			RequestTimeout: time.Second,
		},
		Workers: config.Workers{SessionCleanupInterval: time.Minute},
	}
}

func TestNewServer_WiresLoadedConfig(t *testing.T) {
	srv, err := newServer(&store.Storages{}, loadedConfig(), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_Errors(t *testing.T) {
	t.Run("missing version", func(t *testing.T) {
		cfg := loadedConfig()
		cfg.App.Version = ""

		srv, err := newServer(&store.Storages{}, cfg, logger.Nop())

		assert.Nil(t, srv)
		assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
	})

	t.Run("missing listen address", func(t *testing.T) {
		cfg := loadedConfig()
		cfg.Server.HTTPAddress = ""

		srv, err := newServer(&store.Storages{}, cfg, logger.Nop())

		assert.Nil(t, srv)
		assert.ErrorContains(t, err, "creating handlers")
	})
}
