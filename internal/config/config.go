package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// DBPath overrides the default database location. The --db flag takes
	// precedence over this.
	DBPath string `env:"FOCUSLAB_DB"`

	// DefaultSessionMinutes seeds the timer configuration form when the
	// stored settings document is absent.
	DefaultSessionMinutes int `env:"FOCUSLAB_SESSION_MINUTES" envDefault:"25"`

	// DefaultRestMinutes is the rest countdown length when the stored
	// settings document is absent.
	DefaultRestMinutes int `env:"FOCUSLAB_REST_MINUTES" envDefault:"5"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
