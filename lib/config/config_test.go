// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.PollIntervalDuration() != 5*time.Second {
		t.Errorf("default poll interval: got %s, want 5s", cfg.PollIntervalDuration())
	}
}

func TestLoadWithoutEnv(t *testing.T) {
	t.Setenv("QUILL_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without QUILL_CONFIG should use defaults: %v", err)
	}
	if cfg.ServerURL != Default().ServerURL {
		t.Errorf("got server URL %q, want default", cfg.ServerURL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeTempConfig(t, "quill.yaml", "server_url: http://localhost:8000\n")
	t.Setenv("QUILL_CONFIG", path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("got server URL %q", cfg.ServerURL)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeTempConfig(t, "quill.yaml", `
server_url: http://localhost:8000
poll_interval: 10s
log_level: info
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("server_url: got %q", cfg.ServerURL)
	}
	if cfg.PollIntervalDuration() != 10*time.Second {
		t.Errorf("poll_interval: got %s, want 10s", cfg.PollIntervalDuration())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level: got %q", cfg.LogLevel)
	}
}

func TestLoadFileJSONC(t *testing.T) {
	path := writeTempConfig(t, "quill.jsonc", `{
	// local development instance
	"server_url": "http://localhost:8000",
	"poll_interval": "2s", // fast polling for testing
}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("server_url: got %q", cfg.ServerURL)
	}
	if cfg.PollIntervalDuration() != 2*time.Second {
		t.Errorf("poll_interval: got %s, want 2s", cfg.PollIntervalDuration())
	}
	// Unspecified fields keep their defaults.
	if cfg.LogLevel != "warn" {
		t.Errorf("log_level should default to warn, got %q", cfg.LogLevel)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty server URL", func(c *Config) { c.ServerURL = "" }},
		{"malformed interval", func(c *Config) { c.PollInterval = "five seconds" }},
		{"zero interval", func(c *Config) { c.PollInterval = "0s" }},
		{"negative interval", func(c *Config) { c.PollInterval = "-5s" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := Default()
			testCase.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
