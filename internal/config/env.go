// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is the dotenv file looked up in the working directory.
const dotEnvFile = ".env"

// loadDotEnv exports the variables declared in path into the process
// environment. Variables that are already set keep their values. A missing
// file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}

// parseEnv fills cfg from the APP_, STORAGE_, SERVER_ and WORKERS_ variables
// declared by the struct tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env config: %w", err)
	}
	return nil
}
