// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the server and the render CLI.
type Config struct {
	Addr string `env:"UNLIGHT_ADDR" envDefault:":8080"`
	// BoardPath is a YAML board file. Empty means the built-in demo board.
	BoardPath string `env:"UNLIGHT_BOARD_PATH"`
	// FontPath is a UTF-8 TrueType font for board text.
	FontPath string `env:"UNLIGHT_FONT_PATH"`
	// Seed fixes the placeholder colors; zero picks a seed per visitor.
	Seed uint64 `env:"UNLIGHT_SEED"`
	// MaxVisitors caps the server's in-memory visitor store.
	MaxVisitors int `env:"UNLIGHT_MAX_VISITORS" envDefault:"10000"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
