// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"add-numbers/internal/config"
	"add-numbers/internal/logging"
	"add-numbers/internal/telemetry"
	"add-numbers/internal/temporal"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Worker exited", "error", err)
		os.Exit(1)
	}
}

// run serves AddWorkflow until SIGINT/SIGTERM or a fatal worker error.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotFound) {
		cfg, err = config.Default(), nil
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)

	if cfg.Telemetry.Enabled {
		tp, err := telemetry.NewTracerProvider(ctx, telemetry.FromConfig(cfg.Telemetry))
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("Failed to flush traces", "error", err)
			}
		}()
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	w, err := temporal.NewTemporalWorker(dialCtx, temporal.WorkerOptions{
		TaskQueue: cfg.Temporal.TaskQueue,
		Namespace: cfg.Temporal.Namespace,
		HostPort:  cfg.Temporal.HostPort,
	})
	if err != nil {
		return fmt.Errorf("unable to connect to Temporal at %s: %w", cfg.Temporal.HostPort, err)
	}
	defer w.Close()

	w.RegisterCalculator()
	logger.Info("Worker listening", "task_queue", w.TaskQueue(), "namespace", cfg.Temporal.Namespace)

	if err := w.Run(ctx); err != nil {
		return err
	}
	logger.Info("Worker stopped")
	return nil
}
