package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs in priority order. Errors from
// individual sources are joined and reported once by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("merge config: %w", err)
		}
	}

	merged.applyDefaults()
	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return b.add(nil, err)
	}

	cfg := new(StructuredConfig)
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(ParseFlags(args))
}

// withJSON loads the file named by the first source that set a path.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	return b.add(parseJSON(path))
}

func (b *configBuilder) jsonPath() string {
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			return cfg.JSONFilePath
		}
	}
	return ""
}
