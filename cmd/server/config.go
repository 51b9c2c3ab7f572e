package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config is read from the environment once at startup and passed by
// reference from there on. COMPILER_URL has no sane default so a
// missing value aborts boot.
type config struct {
	Port        int    `env:"PORT" envDefault:"3000"`
	CompilerURL string `env:"COMPILER_URL,required,notEmpty"`
	NatsURL     string `env:"NATS_URL"`
}

func parseConfig() (*config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
