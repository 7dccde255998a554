// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// applyDefaults fills every field that no source populated.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Workers.SessionCleanupInterval == 0 {
		cfg.Workers.SessionCleanupInterval = DefaultSessionCleanupInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordPepper == "" || cfg.App.SessionTTL < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionCleanupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
