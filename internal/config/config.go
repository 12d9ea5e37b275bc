// Package config loads process configuration from an optional .env file
// and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings that are not tied to a single command.
type Config struct {
	// DBPath is the SQLite file. Empty means the store's default location.
	DBPath string

	Log     LogConfig
	LLM     LLMConfig
	Release ReleaseConfig

	// EnvFileLoaded reports whether a .env file was found and applied.
	EnvFileLoaded bool
}

// LogConfig selects log verbosity, encoding and destination.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	File   string // destination for the interactive app
}

// LLMConfig overrides LLM middleware settings. Provider credentials are
// read by the llm package itself.
type LLMConfig struct {
	Timeout     time.Duration
	MaxAttempts int
}

// ReleaseConfig points the release check at a GitHub repository.
type ReleaseConfig struct {
	Repo    string // owner/name
	BaseURL string
}

// Load reads .env from the working directory (a missing file is fine) and
// then the environment. Variables already set in the environment win over
// values in .env.
func Load() (*Config, error) {
	loaded := true
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		loaded = false
	}

	return &Config{
		DBPath: getEnv("FITCHECK_DB", ""),
		Log: LogConfig{
			Level:  getEnv("FITCHECK_LOG_LEVEL", "info"),
			Format: getEnv("FITCHECK_LOG_FORMAT", "text"),
			File:   getEnv("FITCHECK_LOG_FILE", defaultLogFile()),
		},
		LLM: LLMConfig{
			Timeout:     getEnvAsDuration("FITCHECK_LLM_TIMEOUT", 30*time.Second),
			MaxAttempts: getEnvAsInt("FITCHECK_LLM_MAX_ATTEMPTS", 3),
		},
		Release: ReleaseConfig{
			Repo:    getEnv("FITCHECK_RELEASE_REPO", "abhisek/fitcheck"),
			BaseURL: getEnv("FITCHECK_RELEASE_API", "https://api.github.com"),
		},
		EnvFileLoaded: loaded,
	}, nil
}

// defaultLogFile returns $XDG_STATE_HOME/fitcheck/fitcheck.log, falling back
// to ~/.local/state.
func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "fitcheck.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "fitcheck", "fitcheck.log")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return defaultValue
}
