// Package config loads runtime configuration from the environment.
// A .env file in the working directory is honoured when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the application.
type Config struct {
	// Currency is the label used when rendering money, e.g. "KSh".
	Currency string

	// DemoData seeds the ledgers with the sample dataset on startup.
	DemoData bool

	Log LogConfig
}

// LogConfig controls the zerolog setup.
type LogConfig struct {
	Level  string // trace, debug, info, warn, error
	Format string // console, json
}

// Load reads configuration from .env (if present) and the process
// environment. Missing variables fall back to defaults; Load never fails on
// an absent .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Currency: getEnv("HOPPERS_CURRENCY", "KSh"),
		DemoData: getBool("HOPPERS_DEMO_DATA", false),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
