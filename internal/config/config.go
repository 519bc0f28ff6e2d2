// Package config loads process settings from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all settings. Command-line flags override these values.
type Config struct {
	// Seed for the random source. Zero seeds from the clock.
	Seed uint64 `env:"WELLOW_SEED" env-default:"0" env-description:"random seed, 0 for time-seeded"`

	// CatalogPath points at a YAML catalog. Empty uses the embedded default.
	CatalogPath string `env:"WELLOW_CATALOG" env-default:"" env-description:"path to a catalog YAML file"`

	LogLevel string `env:"WELLOW_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Usage describes the supported environment variables, for help output.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
