// Package config resolves file locations and logging options for the
// compound binary. Growth weights and cycle settings live in the
// database settings table instead.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read by LoadConfig.
const (
	EnvDBPath          = "COMPOUND_DB"
	EnvRecordsFallback = "COMPOUND_RECORDS_FALLBACK"
	EnvLogFile         = "COMPOUND_LOG_FILE"
	EnvLogLevel        = "COMPOUND_LOG_LEVEL"
)

const appDir = "compound"

type Config struct {
	DBPath          string
	RecordsFallback string
	LogFile         string
	LogLevel        string
}

// DataDir returns ~/.config/compound, or the working directory when the
// user config dir cannot be determined.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDir)
}

func DefaultConfig() *Config {
	dir := DataDir()
	return &Config{
		DBPath:          filepath.Join(dir, "compound.db"),
		RecordsFallback: filepath.Join(dir, "records.json"),
		LogFile:         filepath.Join(dir, "compound.log"),
		LogLevel:        "info",
	}
}

// LoadConfig reads the given .env files (".env" when none are named),
// then applies environment overrides on top of the defaults. Missing
// .env files are not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	cfg := DefaultConfig()
	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvRecordsFallback); v != "" {
		cfg.RecordsFallback = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path is empty")
	}
	if c.RecordsFallback == "" {
		return fmt.Errorf("records fallback path is empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return nil
}
