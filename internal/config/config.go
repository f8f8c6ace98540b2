package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the application configuration
type Config struct {
	// ContactsFile overrides the bundled contacts.json
	ContactsFile string `env:"CONTACTS_FILE"`
	// SeedDatabase loads the initial contacts from a SQLite file instead of JSON
	SeedDatabase string `env:"CONTACTS_SEED_DB"`
	LogLevel     string `env:"CONTACTS_LOG_LEVEL" envDefault:"info"`

	WhatsAppEnabled     bool   `env:"WHATSAPP_ENABLED" envDefault:"false"`
	WhatsAppDataDir     string `env:"WHATSAPP_DATA_DIR" envDefault:"data"`
	WhatsAppCountryCode string `env:"WHATSAPP_COUNTRY_CODE" envDefault:"1"`
}

// LoadConfig loads configuration from environment variables or defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level returns the zerolog level named by LogLevel
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
