// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. A command-line flag:      --config=/path/to/config.yaml
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  3. Plain environment variables (when no file path is given at all)
//
// A .env file in the working directory, if present, is loaded into the
// process environment first, so its values can fill env:"..." fields in
// every mode.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Supported values of Storage.Driver.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format, verbosity and the gin mode.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	Storage    `yaml:"storage"`
	HTTPServer `yaml:"http_server"`
	CORS       `yaml:"cors"`
}

// Storage selects and tunes the SQL database.
type Storage struct {
	// Driver is "sqlite" (DSN is a file path) or "mysql"
	// (DSN is user:pass@tcp(host:3306)/dbname).
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn" env:"STORAGE_DSN" env-required:"true"`

	MaxOpenConns int `yaml:"max_open_conns" env:"STORAGE_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns int `yaml:"max_idle_conns" env:"STORAGE_MAX_IDLE_CONNS" env-default:"5"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// CORS is the cross-origin policy. The defaults allow every origin,
// method and header with credentials; they are spelled out here rather
// than left to the middleware's own defaults.
type CORS struct {
	AllowOrigins     []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods     []string `yaml:"allow_methods" env:"CORS_ALLOW_METHODS" env-default:"GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS"`
	AllowHeaders     []string `yaml:"allow_headers" env:"CORS_ALLOW_HEADERS" env-default:"*"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
}

// Load reads the configuration from path, or from the environment alone
// when path is empty and CONFIG_PATH is unset.
func Load(path string) (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: read .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}

		// cleanenv.ReadConfig reads the YAML file, then applies any env:"..."
		// overrides and checks env-required:"true" fields.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverMySQL:
		return nil
	default:
		return fmt.Errorf("config: unsupported storage driver %q", c.Storage.Driver)
	}
}
