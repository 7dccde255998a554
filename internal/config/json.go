package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is the on-disk layout of the JSON config file.
type jsonConfig struct {
	App struct {
		PasswordPepper string   `json:"password_pepper"`
		SessionTTL     Duration `json:"session_ttl"`
		Version        string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers"`
}

func (c *jsonConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordPepper: c.App.PasswordPepper,
			SessionTTL:     time.Duration(c.App.SessionTTL),
			Version:        c.App.Version,
		},
		Storage: Storage{DB: DB{DSN: c.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(c.Workers.SessionCleanupInterval),
		},
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open json config: %w", err)
	}
	defer f.Close()

	var raw jsonConfig
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", path, err)
	}

	return raw.structured(), nil
}

// Duration is a time.Duration that decodes from either "90s" style strings
// or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
