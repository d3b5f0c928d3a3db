// Package config reads client settings from the environment. A .env
// file, when present, is loaded by main before this runs.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const defaultServerURL = "http://localhost:5000"

type Config struct {
	// ServerURL is the packing-assistant backend base URL.
	ServerURL string
	// Timeout bounds each backend request. Zero means no timeout,
	// matching the original dashboard behavior.
	Timeout time.Duration
	// LogFile receives diagnostics; the TUI owns the terminal, so
	// logs never go to stdout/stderr.
	LogFile string
	Debug   bool
}

// FromEnv builds a Config from PACKUP_* variables with defaults.
func FromEnv() Config {
	cfg := Config{ServerURL: defaultServerURL}
	if v := os.Getenv("PACKUP_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("PACKUP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	cfg.LogFile = os.Getenv("PACKUP_LOG_FILE")
	if cfg.LogFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.LogFile = filepath.Join(home, ".packup", "packup.log")
		}
	}
	if v := os.Getenv("PACKUP_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}
	return cfg
}
