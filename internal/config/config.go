// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Solver struct {
		Tolerance     float64 `env:"SOLVER_TOLERANCE" envDefault:"0.0001"`
		MaxIterations int     `env:"SOLVER_MAX_ITERATIONS" envDefault:"40"`
		BracketStep   float64 `env:"SOLVER_BRACKET_STEP" envDefault:"0.01"`
		BracketFactor float64 `env:"SOLVER_BRACKET_FACTOR" envDefault:"2.0"`
		BracketProbes int     `env:"SOLVER_BRACKET_PROBES" envDefault:"1000"`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Development gets verbose logging unless overridden.
	if cfg.Environment == "development" && cfg.Logging.Level == "info" {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}
