/*
SPDX-License-Identifier: GPL-3.0-or-later

Copyright (C) 2025 Aaron Mathis aaron.mathis@gmail.com

This file is part of Pulse.

Pulse is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Pulse is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Pulse. If not, see https://www.gnu.org/licenses/.
*/

// cmd/main.go - main entry point for pulse.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/devpospicha/pulse/internal/bootstrap"
	"github.com/devpospicha/pulse/internal/dashboard"
	"github.com/devpospicha/pulse/internal/logger"
)

var Version = "dev" // default
// go build -ldflags "-X main.Version=0.1.0" -o pulse ./cmd

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute runs the root command with args and returns the process exit code.
func execute(args []string, stderr io.Writer) int {
	code := int(dashboard.ExitOK)
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "pulse: %v\n", err)
		if code == int(dashboard.ExitOK) {
			code = int(dashboard.ExitFailure)
		}
	}
	return code
}

func newRootCmd(code *int) *cobra.Command {
	var (
		flags      bootstrap.Flags
		noPrompt   bool
		requireTTY bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:           "pulse",
		Short:         "Snapshot host metrics and terminate a resource-heavy process",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("no-prompt") {
				interactive := !noPrompt
				flags.Interactive = &interactive
			}
			if cmd.Flags().Changed("require-tty") {
				flags.RequireTTY = &requireTTY
			}
			if cmd.Flags().Changed("no-color") {
				color := !noColor
				flags.Color = &color
			}
			return run(cmd.Context(), flags, code)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.ConfigPath, "config", "", "Path to config file (default ./pulse.yaml, or $PULSE_CONFIG)")
	f.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&flags.AppLogFile, "app-log", "", "Path to app log file")
	f.StringVar(&flags.ErrorLogFile, "error-log", "", "Path to error log file")
	f.StringVar(&flags.Sources, "sources", "", "Comma-separated metric collectors (host,cpu,mem,disk,net,sensors)")
	f.DurationVar(&flags.CPUInterval, "cpu-interval", 0, "Per-core CPU sample window (e.g. 200ms)")
	f.StringVar(&flags.SamplerCommand, "sampler", "", "Per-process CPU sampler command (e.g. \"ps -axo pid,pcpu\")")
	f.StringVar(&flags.TerminateMethod, "terminate-method", "", "Termination back-end: signal or command")
	f.StringVar(&flags.ReportFile, "report-file", "", "Write a JSON record of this run to the file, replacing the previous one")
	f.BoolVar(&noPrompt, "no-prompt", false, "Only list heavy processes, never prompt")
	f.BoolVar(&requireTTY, "require-tty", false, "Skip the prompt when stdin is not a terminal")
	f.BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func run(parent context.Context, flags bootstrap.Flags, code *int) error {
	cfg, err := bootstrap.LoadConfig(flags)
	if err != nil {
		*code = int(dashboard.ExitFailure)
		return err
	}
	if err := bootstrap.SetupLogging(cfg); err != nil {
		*code = int(dashboard.ExitFailure)
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Operator input cannot be interrupted, so a signal ends the process.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
			logger.Warn("signal received, exiting")
			cancel()
			os.Exit(130)
		case <-ctx.Done():
		}
	}()

	d, err := dashboard.New(cfg, os.Stdin, os.Stdout)
	if err != nil {
		*code = int(dashboard.ExitFailure)
		return err
	}

	exit, err := d.Run(ctx)
	*code = int(exit)
	return err
}
