// Package config loads command line tool settings from the environment and
// column mapping files from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/lingEric/exceltool/internal/logging"
	"github.com/lingEric/exceltool/pkg/exceltool/paging"
)

// Environment variables read by Load.
const (
	EnvLogLevel     = "EXCELTOOL_LOG_LEVEL"
	EnvLogFormat    = "EXCELTOOL_LOG_FORMAT"
	EnvPageCapacity = "EXCELTOOL_PAGE_CAPACITY"
)

// DefaultEnvFile is the dotenv file Load reads when present.
const DefaultEnvFile = ".env"

// Config holds settings that flags may override.
type Config struct {
	LogLevel     string
	LogFormat    string
	PageCapacity int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    "text",
		PageCapacity: paging.DefaultCapacity,
	}
}

// Load reads envFile into the process environment when it exists, then
// applies environment overrides to the defaults. Variables already set in
// the environment take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageCapacity)); v != "" {
		n, err := cast.ToIntE(v)
		if err != nil {
			return Config{}, fmt.Errorf("config load: invalid %s %q: %w", EnvPageCapacity, v, err)
		}
		cfg.PageCapacity = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	var errs []error
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("%s must be debug, info, warn or error, got %q", EnvLogLevel, c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("%s must be text or json, got %q", EnvLogFormat, c.LogFormat))
	}
	if c.PageCapacity <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvPageCapacity, c.PageCapacity))
	}
	return errors.Join(errs...)
}
