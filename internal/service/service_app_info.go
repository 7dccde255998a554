// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports the configured build version. An empty version
// is a configuration error.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", cfg.Version).Msg("serving note keeper")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
