package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// StoreConfig holds workforce store configuration
type StoreConfig struct {
	ActivityRetention int
	SeedDemoData      bool
	AvatarSeed        int64
}

func Load() (*Config, error) {
	// Missing .env is fine; env vars may come from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	retention, err := strconv.Atoi(getEnv("ACTIVITY_RETENTION", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACTIVITY_RETENTION: %w", err)
	}

	seedDemoData, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	avatarSeed, err := strconv.ParseInt(getEnv("AVATAR_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid AVATAR_SEED: %w", err)
	}

	config.Store = StoreConfig{
		ActivityRetention: retention,
		SeedDemoData:      seedDemoData,
		AvatarSeed:        avatarSeed,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.ActivityRetention <= 0 {
		return fmt.Errorf("ACTIVITY_RETENTION must be positive")
	}
	return nil
}

// SlogLevel maps the configured log level string to a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch c.App.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
