// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for quill.
//
// Configuration is a single optional file, located via:
//   - the QUILL_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// The file may be YAML (.yaml/.yml) or JSONC (.json/.jsonc — JSON
// extended with // line comments, /* block comments */, and trailing
// commas). There is no automatic discovery and no other override
// source; flags beat the file, the file beats the defaults, and
// nothing else participates.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the quill client.
type Config struct {
	// ServerURL is the microblog service origin. Defaults to the
	// public service; point it at a local instance for development.
	ServerURL string `yaml:"server_url" json:"server_url"`

	// PollInterval is the fixed feed refresh interval as a duration
	// string ("5s", "1m"). Defaults to "5s".
	PollInterval string `yaml:"poll_interval" json:"poll_interval"`

	// LogLevel controls the minimum level of the status-bar log
	// notices: "debug", "info", "warn" (default), or "error".
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the built-in configuration used when no file is
// present.
func Default() *Config {
	return &Config{
		ServerURL:    "https://api.quill.social",
		PollInterval: "5s",
		LogLevel:     "warn",
	}
}

// Load loads configuration from the QUILL_CONFIG environment variable
// if set, or returns the defaults. Unlike LoadFile, a missing
// QUILL_CONFIG is not an error — quill works out of the box with no
// config file at all.
func Load() (*Config, error) {
	configPath := os.Getenv("QUILL_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// PollIntervalDuration parses the configured poll interval. Call
// Validate first; on an unvalidated config a malformed interval
// falls back to the default.
func (c *Config) PollIntervalDuration() time.Duration {
	interval, err := time.ParseDuration(c.PollInterval)
	if err != nil || interval <= 0 {
		return 5 * time.Second
	}
	return interval
}

// Validate checks the configuration for values that would misbehave
// at runtime.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url must not be empty")
	}
	interval, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return fmt.Errorf("poll_interval %q is not a duration: %w", c.PollInterval, err)
	}
	if interval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", interval)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	return nil
}

// SlogLevel maps the configured log level to a slog.Level. Unknown
// values (possible only on an unvalidated config) map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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
