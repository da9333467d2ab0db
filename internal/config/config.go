// Package config resolves process-wide defaults for the CLI. Values come
// from the environment (optionally seeded from a .env file); flags always
// win over config.
package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the CLI defaults.
// See .env.example for more documentation.
type Config struct {
	OutputDir      string `env:"MODKIT_OUTPUT_DIR" envDefault:"."`
	Author         string `env:"MODKIT_AUTHOR" envDefault:""`
	Email          string `env:"MODKIT_EMAIL" envDefault:""`
	DefaultVersion string `env:"MODKIT_DEFAULT_VERSION" envDefault:"0.1.0"`
	NonInteractive bool   `env:"MODKIT_NON_INTERACTIVE" envDefault:"false"`
	Verbose        bool   `env:"VERBOSE" envDefault:"false"`
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
