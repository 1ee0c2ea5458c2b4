package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Bot is the whole runtime configuration. The binary takes no flags.
type Bot struct {
	BaseURL        string        `env:"MUGLOAR_BASE_URL" envDefault:"https://dragonsofmugloar.com"`
	RequestTimeout time.Duration `env:"MUGLOAR_REQUEST_TIMEOUT" envDefault:"30s"`
	RandomSeed     uint64        `env:"MUGLOAR_RANDOM_SEED"`
	JournalDSN     string        `env:"MUGLOAR_JOURNAL_DSN"`
	MaxTurns       int           `env:"MUGLOAR_MAX_TURNS" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadBot() (Bot, error) {
	var cfg Bot
	if err := ParseEnv(&cfg); err != nil {
		return Bot{}, err
	}
	if cfg.RequestTimeout <= 0 {
		return Bot{}, fmt.Errorf("parse env: MUGLOAR_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.MaxTurns < 0 {
		return Bot{}, fmt.Errorf("parse env: MUGLOAR_MAX_TURNS must not be negative, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}
