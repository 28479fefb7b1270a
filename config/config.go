// Package config loads the provider credential and tuning knobs from a .env
// file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"weather-report/logger"
)

const DefaultBaseURL = "http://api.weatherapi.com/v1"

// Config holds everything the command needs before it builds a request
type Config struct {
	APIKey   string        `mapstructure:"API_KEY"`
	BaseURL  string        `mapstructure:"WEATHER_API_BASE_URL"`
	Timeout  time.Duration `mapstructure:"WEATHER_API_TIMEOUT"` // 0 keeps the transport default
	LogLevel string        `mapstructure:"LOG_LEVEL"`
	NoColor  string        `mapstructure:"NO_COLOR"`
}

// ColorDisabled reports whether NO_COLOR was set to anything
func (c *Config) ColorDisabled() bool {
	return c.NoColor != ""
}

var keys = []string{
	"API_KEY",
	"WEATHER_API_BASE_URL",
	"WEATHER_API_TIMEOUT",
	"LOG_LEVEL",
	"NO_COLOR",
}

// Load reads envFiles (a missing file is skipped) into the environment without
// overriding variables that are already set, then unmarshals the environment.
// With no envFiles, ".env" in the working directory is tried.
func Load(envFiles ...string) (*Config, error) {
	log := logger.GetLogger()

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugw("No env file", "path", f)
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
		log.Debugw("Loaded env file", "path", f)
	}

	v := viper.New()
	v.SetDefault("WEATHER_API_BASE_URL", DefaultBaseURL)
	v.SetDefault("WEATHER_API_TIMEOUT", time.Duration(0))
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("NO_COLOR", "")
	v.SetDefault("API_KEY", "")

	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	// A missing key is reported by the provider as a 401.
	if cfg.APIKey == "" {
		log.Debug("API_KEY is not set")
	}

	log.Debugw("Configuration loaded",
		"api_key", logger.MaskAPIKey(cfg.APIKey),
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout)

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return fmt.Errorf("WEATHER_API_BASE_URL must not be empty")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("WEATHER_API_TIMEOUT must not be negative, got %s", cfg.Timeout)
	}
	return nil
}
