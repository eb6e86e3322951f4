// Package config holds the environment-driven settings for analysis runs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the run settings a user is most likely to tune. CLI flags
// override whatever is loaded here.
type Config struct {
	// EnginePath locates the UCI engine binary.
	EnginePath string `env:"PRAXIS_ENGINE_PATH" envDefault:"stockfish"`

	// Depth is the fixed search depth per evaluated position.
	Depth int `env:"PRAXIS_DEPTH" envDefault:"18"`

	// ThresholdCP is the centipawn drop at which a move counts as a mistake.
	ThresholdCP int `env:"PRAXIS_THRESHOLD_CP" envDefault:"100"`

	// DBPath overrides the default database location.
	DBPath string `env:"PRAXIS_DB"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
