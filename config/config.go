package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string `env:"DISCORD_TOKEN"`
	DiscordGuildID string `env:"DISCORD_GUILD_ID"`

	// Database configuration
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseName string `env:"DATABASE_NAME"`

	// Telemetry ingest configuration
	TelemetryAddr  string `env:"TELEMETRY_ADDR" envDefault:":8085"`
	TelemetryToken string `env:"TELEMETRY_TOKEN"`

	// Gambling configuration
	MaxSlotsBet      int64         `env:"MAX_SLOTS_BET" envDefault:"10000"`
	MaxBlackjackBet  int64         `env:"MAX_BLACKJACK_BET" envDefault:"5000"`
	MaxRouletteBet   int64         `env:"MAX_ROULETTE_BET" envDefault:"2000"`
	BlackjackTimeout time.Duration `env:"BLACKJACK_TIMEOUT" envDefault:"60s"`

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	if config.MaxSlotsBet <= 0 || config.MaxBlackjackBet <= 0 || config.MaxRouletteBet <= 0 {
		return nil, fmt.Errorf("bet ceilings must be positive")
	}

	return &config, nil
}
