// Package config loads runtime settings from the environment.
//
// Values come from process environment variables, optionally seeded from a
// .env file, with defaults applied by viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds the application settings.
type Config struct {
	Port        string `validate:"required"`
	Env         string `validate:"required"`
	LogLevel    string `validate:"required"`
	FrontendURL string
	DBDriver    string `validate:"oneof=postgres sqlite memory"`
	DatabaseDSN string `validate:"required_unless=DBDriver memory"`
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads the configuration. envFile is loaded into the process
// environment first when it exists; existing variables are not overridden.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("APP_PORT", ":4001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FRONTEND_URL", "")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "file:catalog.db?cache=shared")
	v.AutomaticEnv()

	cfg := &Config{
		Port:        v.GetString("APP_PORT"),
		Env:         v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		FrontendURL: v.GetString("FRONTEND_URL"),
		DBDriver:    v.GetString("DB_DRIVER"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
