// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

// quill is a terminal client for a quill microblog server. It shows
// the global feed (refreshed every few seconds), single posts with
// markdown rendering, and per-author timelines, and lets a logged-in
// user publish posts from a compose overlay.
//
// Configuration comes from a YAML or JSONC file (--config, or the
// QUILL_CONFIG environment variable) with flags overriding individual
// values. Without a config file the client talks to the default
// server anonymously.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/quillhq/quill/lib/config"
	"github.com/quillhq/quill/lib/feedui"
	"github.com/quillhq/quill/lib/microblog"
	"github.com/quillhq/quill/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var serverURL string
	var pollInterval time.Duration
	var logOutput string

	flagSet := pflag.NewFlagSet("quill", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML or JSONC config file (default: $QUILL_CONFIG)")
	flagSet.StringVar(&serverURL, "server", "", "microblog server base URL (overrides config)")
	flagSet.DurationVar(&pollInterval, "interval", 0, "feed refresh interval (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other quill tooling.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("quill")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if pollInterval > 0 {
		cfg.PollInterval = pollInterval.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Background logging routes through a TUILogHandler so warnings
	// and errors land in the status bar instead of on stderr, which
	// would corrupt the alt-screen display. An optional file logger
	// captures all records for post-mortem debugging.
	tuiHandler := feedui.NewTUILogHandler(cfg.SlogLevel())

	var logger *slog.Logger
	if logOutput != "" {
		fileHandler, fileCloser, fileErr := openFileLogHandler(logOutput)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, fileErr)
		}
		defer fileCloser()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		logger = slog.New(tuiHandler)
	}

	client, err := microblog.NewClient(microblog.ClientConfig{
		BaseURL:    cfg.ServerURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	model := feedui.NewModel(feedui.Config{
		Backend:      client,
		Logger:       logger,
		PollInterval: cfg.PollIntervalDuration(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())

	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `quill — interactive terminal client for a quill microblog server.

The feed refreshes automatically. Log in (l) or create an account (s)
to publish posts with the compose overlay (c). Anonymous browsing
needs no account.

Usage:
  quill [flags]

Examples:
  # Connect to the default server
  quill

  # Connect to a local development server
  quill --server http://localhost:8000

  # Slow the feed refresh down
  quill --interval 30s

  # Keep a debug log for a bug report
  quill --log-output /tmp/quill.log

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
