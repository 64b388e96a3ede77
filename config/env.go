package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the dedicated server process settings.
type ServerConfig struct {
	Port      int           `env:"DOOMERANG_PORT" envDefault:"7373"`
	TickRate  int           `env:"DOOMERANG_TICK_RATE" envDefault:"30"`
	Workers   int           `env:"DOOMERANG_WORKERS" envDefault:"0"`
	CombosDir string        `env:"DOOMERANG_COMBOS_DIR"`
	AssetsDir string        `env:"DOOMERANG_ASSETS_DIR"`
	Arena     string        `env:"DOOMERANG_ARENA"`
	Watch     bool          `env:"DOOMERANG_WATCH_COMBOS" envDefault:"false"`
	StatsLog  time.Duration `env:"DOOMERANG_STATS_INTERVAL" envDefault:"30s"`

	Bots          int    `env:"DOOMERANG_BOTS" envDefault:"0"`
	BotDifficulty string `env:"DOOMERANG_BOT_DIFFICULTY" envDefault:"normal"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.TickRate <= 0 {
		return ServerConfig{}, fmt.Errorf("parse env: tick rate must be positive, got %d", cfg.TickRate)
	}
	return cfg, nil
}
