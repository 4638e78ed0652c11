// Package config loads the application configuration from environment
// variables, with a local .env file as a development convenience.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/session"
)

// Config is the full application configuration.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"scrapegenie-storefront"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// AllowedOrigins grants cross-origin access to the JSON endpoints.
	// Empty leaves the cors middleware uninstalled, so browsers enforce
	// same-origin.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:""`

	Server      ServerConfig
	Marketplace MarketplaceConfig
	Cookie      cookie.Config
	Session     session.Config

	// RedisURL, when set, switches session storage from in-process memory
	// to Redis so sessions survive restarts and scale horizontally.
	RedisURL string `env:"REDIS_URL" envDefault:""`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// MarketplaceConfig points at the upstream marketplace API.
type MarketplaceConfig struct {
	BaseURL string        `env:"MARKETPLACE_BASE_URL,required,notEmpty"`
	Timeout time.Duration `env:"MARKETPLACE_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
