package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"bank-account-cli/internal/validation"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

type Config struct {
	App     AppConfig     `json:"app"`
	Log     LogConfig     `json:"log"`
	Account AccountConfig `json:"account"`
	Metrics MetricsConfig `json:"metrics"`
}

type AppConfig struct {
	Environment string `json:"environment" validate:"required,oneof=development testing production"`
}

type LogConfig struct {
	Level  string `json:"level" validate:"required,oneof=debug info warn error"`
	Format string `json:"format" validate:"required,oneof=text json"`
}

type AccountConfig struct {
	// NumberSeed seeds account number generation; 0 seeds from the clock
	NumberSeed int64 `json:"number_seed"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled"`
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "error")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Account: AccountConfig{
			NumberSeed: getInt64Env("ACCOUNT_NUMBER_SEED", 0),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("METRICS_ENABLED", true),
		},
	}
}

// LoadEnvFile loads variables from path without overriding the environment.
// A missing default file is not an error; a missing explicit file is.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

// Validate checks the loaded values against their allowed ranges
func (c *Config) Validate() error {
	return validation.GetValidator().ValidateStruct(c)
}

// SlogLevel converts the configured level name to a slog.Level
func (c *LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
