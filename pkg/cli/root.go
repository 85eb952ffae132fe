/*
Copyright © 2025 the pvemetrics authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/pvetools/pvemetrics/pkg/logging"
)

const (
	name           = "pvemetrics"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Proxmox hardware and VM telemetry collector",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Collects hardware sensor readings, SMART disk health, and VM disk
usage from a Proxmox node and publishes them to InfluxDB. Designed to
run from cron or a systemd timer: one invocation is one collection
cycle.

Connection settings can also come from a .env file in the working
directory or from the environment (INFLUX_URL, INFLUX_TOKEN,
INFLUX_ORG, INFLUX_BUCKET, HOST_NAME).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			// .env is optional; the environment may already be populated.
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return ctx, fmt.Errorf("loading .env: %w", err)
			}
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			collectCmd(),
			deleteCmd(),
		},
	}
}

// Execute parses arguments and runs the selected command. It is called by
// main.main() and installs SIGINT/SIGTERM handling for graceful shutdown.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog after flag parsing so --log-level takes effect
// before any command executes.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}
