// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names.
const (
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvMongoURL              = "MONGO_URL"
	EnvMongoSelectionTimeout = "MONGO_SELECTION_TIMEOUT"
	EnvJWTSecret             = "JWT_SECRET"
	EnvJWTExpiration         = "JWT_EXPIRATION"
)

const (
	// DatabaseName is the fixed MongoDB database holding the users and tasks collections.
	DatabaseName = "todo_db"

	// DefaultJWTSecret is the shared signing secret used when JWT_SECRET is not set.
	DefaultJWTSecret = "SECRET123"

	defaultPort             = "8080"
	defaultLogLevel         = "info"
	defaultMongoURL         = "mongodb://localhost:27017/"
	defaultSelectionTimeout = 5 * time.Second
	defaultJWTExpiration    = time.Hour
)

// Config holds all settings needed to run the server.
type Config struct {
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"oneof=debug info warn error"`
	Mongo    MongoConfig
	JWT      JWTConfig
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URL              string        `validate:"required"`
	Database         string        `validate:"required"`
	SelectionTimeout time.Duration `validate:"gt=0"`
}

// JWTConfig holds the token signing settings.
type JWTConfig struct {
	Secret     string        `validate:"required"`
	Expiration time.Duration `validate:"gt=0"`
}

// UsesDefaultSecret reports whether the built-in development secret is in use.
func (c JWTConfig) UsesDefaultSecret() bool {
	return c.Secret == DefaultJWTSecret
}

// Load reads .env (if present) and the process environment, applies defaults and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not found; using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(EnvPort, defaultPort)
	v.SetDefault(EnvLogLevel, defaultLogLevel)
	v.SetDefault(EnvMongoURL, defaultMongoURL)
	v.SetDefault(EnvMongoSelectionTimeout, defaultSelectionTimeout)
	v.SetDefault(EnvJWTSecret, DefaultJWTSecret)
	v.SetDefault(EnvJWTExpiration, defaultJWTExpiration)

	cfg := &Config{
		Port:     v.GetString(EnvPort),
		LogLevel: strings.ToLower(v.GetString(EnvLogLevel)),
		Mongo: MongoConfig{
			URL:              v.GetString(EnvMongoURL),
			Database:         DatabaseName,
			SelectionTimeout: v.GetDuration(EnvMongoSelectionTimeout),
		},
		JWT: JWTConfig{
			Secret:     v.GetString(EnvJWTSecret),
			Expiration: v.GetDuration(EnvJWTExpiration),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
