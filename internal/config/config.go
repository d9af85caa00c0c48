package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8081"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Env      string `env:"ENV" envDefault:"development"`

	// CallerUserID is the identity every request acts as when no
	// JWTSecret is configured.
	CallerUserID int64  `env:"CALLER_USER_ID" envDefault:"1"`
	JWTSecret    string `env:"JWT_SECRET"`

	// Seed sources, highest precedence first.
	SeedDatabaseURL string `env:"SEED_DATABASE_URL"`
	SeedFile        string `env:"SEED_FILE"`
	SeedDemo        bool   `env:"SEED_DEMO" envDefault:"true"`

	ReplyDepth      int           `env:"REPLY_DEPTH" envDefault:"1"`
	MessageLimitMax int           `env:"MESSAGE_LIMIT_MAX" envDefault:"100"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.CallerUserID <= 0 {
		return fmt.Errorf("CALLER_USER_ID must be positive, got %d", c.CallerUserID)
	}
	if c.ReplyDepth < 1 {
		return fmt.Errorf("REPLY_DEPTH must be at least 1, got %d", c.ReplyDepth)
	}
	if c.MessageLimitMax < 1 {
		return fmt.Errorf("MESSAGE_LIMIT_MAX must be at least 1, got %d", c.MessageLimitMax)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
