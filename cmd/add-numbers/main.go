// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Command add-numbers prints a sample calculation.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"add-numbers/internal/calculator"
	"add-numbers/internal/config"
	"add-numbers/internal/logging"
	"add-numbers/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg := loadConfig(os.Stderr)
	logger := logging.New(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)

	if cfg.Telemetry.Enabled {
		tp, err := telemetry.NewTracerProvider(ctx, telemetry.FromConfig(cfg.Telemetry))
		if err != nil {
			logger.Warn("Tracing disabled", "error", err)
		} else {
			defer func() {
				if err := tp.Shutdown(ctx); err != nil {
					logger.Warn("Failed to flush traces", "error", err)
				}
			}()
		}
	}

	if err := run(ctx, cfg.Demo, os.Stdout); err != nil {
		logger.Error("Failed to write sample calculation", "error", err)
	}
}

// loadConfig returns the file configuration, or defaults when it is missing
// or unusable. Fallback warnings are logged to w.
func loadConfig(w io.Writer) *config.Config {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			logging.New(config.Default().Logging, w).Warn("Using default configuration", "error", err)
		}
		return config.Default()
	}
	return cfg
}

// run performs the sample calculation and writes its single output line.
func run(ctx context.Context, demo config.DemoConfig, w io.Writer) error {
	ctx, span := telemetry.StartSpan(ctx, "calculator.add")
	defer span.End()

	result := calculator.Add(demo.A, demo.B)
	telemetry.AddAttributes(ctx, telemetry.AddAttrs(demo.A, demo.B, result)...)
	slog.DebugContext(ctx, "Sample calculation", "a", demo.A, "b", demo.B, "sum", result, "trace_id", telemetry.TraceID(ctx))

	_, err := fmt.Fprintf(w, "Sample calculation: add_numbers(%s, %s) = %s\n",
		calculator.FormatOperand(demo.A),
		calculator.FormatOperand(demo.B),
		calculator.Format(result),
	)
	if err != nil {
		telemetry.RecordError(ctx, err)
	}
	return err
}
