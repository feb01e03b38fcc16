package twitcheroo

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds environment-driven client settings. TWITCH_SCOPES is a
// space-separated scope list, matching the token endpoint's wire format.
type Config struct {
	ClientID     string   `env:"TWITCH_CLIENT_ID"`
	ClientSecret string   `env:"TWITCH_CLIENT_SECRET"`
	Scopes       []string `env:"TWITCH_SCOPES"`

	MaxRetries int           `env:"TWITCH_MAX_RETRIES" default:"3"`
	Timeout    time.Duration `env:"TWITCH_TIMEOUT" default:"10s"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// ConfigFromEnv loads client settings from the environment, reading a .env
// file first when one exists.
func ConfigFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, &env.Options{SliceSep: " "}); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// A blank TWITCH_SCOPES splits into empty elements; treat it like unset.
	cfg.Scopes = slices.DeleteFunc(cfg.Scopes, func(s string) bool { return s == "" })

	if cfg.ClientID == "" {
		return nil, fmt.Errorf("TWITCH_CLIENT_ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("TWITCH_CLIENT_SECRET is required")
	}

	return &cfg, nil
}

// Client builds a session from the configuration. Extra options override
// the environment-derived ones.
func (cfg *Config) Client(opts ...Option) (*Client, error) {
	creds, err := NewClientCredentials(cfg.ClientID, cfg.ClientSecret, cfg.Scopes...)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithMaxRetries(cfg.MaxRetries),
		WithTimeout(cfg.Timeout),
	}
	return New(creds, append(base, opts...)...)
}
