package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/worldofbits/internal/config"
	"github.com/vovakirdan/worldofbits/internal/registry"
	"github.com/vovakirdan/worldofbits/internal/telemetry"
)

// loadGameConfig loads the config file and overlays the selected variant, if any.
// Returns the config and the variant name, empty when the config rules apply as written.
func loadGameConfig() (config.Config, string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	name := flagVariant
	if name == "" {
		return cfg, "", nil
	}
	v, err := registry.Create(name)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("%w (run 'bits variants' to list them)", err)
	}
	v.Apply(&cfg.Rules)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, name, nil
}

// openLogger returns a debug logger writing to --log, or a silent one.
// The terminal belongs to Bubble Tea, so nothing is logged to it.
func openLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "bits",
	})
	return logger, func() { f.Close() }
}

// startTelemetry sets up tracing and returns its shutdown function.
func startTelemetry(logger *log.Logger) func() {
	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", "error", err)
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("error shutting down telemetry", "error", err)
		}
	}
}
