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

// pulse/internal/dashboard/dashboard.go
// One dashboard pass: refresh -> rank -> render -> report -> analyze.

package dashboard

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/devpospicha/pulse/internal/analyze"
	"github.com/devpospicha/pulse/internal/config"
	"github.com/devpospicha/pulse/internal/logger"
	"github.com/devpospicha/pulse/internal/metrics/metriccollector"
	"github.com/devpospicha/pulse/internal/model"
	"github.com/devpospicha/pulse/internal/processes/cpusampler"
	"github.com/devpospicha/pulse/internal/processes/ranker"
	"github.com/devpospicha/pulse/internal/render"
	"github.com/devpospicha/pulse/internal/report"
	"github.com/devpospicha/pulse/internal/terminate"
)

// ExitCode is the process exit status for a finished run.
type ExitCode int

const (
	// ExitOK covers all-clear, declined and invalid-PID runs as well as
	// successful terminations.
	ExitOK ExitCode = 0
	// ExitFailure means the snapshot could not be taken.
	ExitFailure ExitCode = 1
	// ExitTerminateFailed means the OS refused the termination request.
	ExitTerminateFailed ExitCode = 2
)

// Provider produces a fresh snapshot on every call.
type Provider interface {
	Refresh(ctx context.Context) (*model.Snapshot, error)
}

// Dashboard wires the provider, sampler, renderer and analyzer for one run.
type Dashboard struct {
	Config   *config.Config
	Provider Provider
	Sampler  cpusampler.Sampler
	Renderer *render.Renderer
	Analyzer *analyze.Analyzer

	stdinTTY bool
}

// New builds a Dashboard from the configuration, reading operator input
// from in and writing the dashboard to out.
func New(cfg *config.Config, in io.Reader, out io.Writer) (*Dashboard, error) {
	term, err := terminate.New(cfg.Terminate.Method)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminator: %w", err)
	}
	return NewWith(cfg, metriccollector.NewRegistry(cfg), cpusampler.NewCommandSampler(cfg.Sampler), term, in, out), nil
}

// NewWith builds a Dashboard from explicit collaborators.
func NewWith(cfg *config.Config, provider Provider, sampler cpusampler.Sampler, term terminate.Terminator, in io.Reader, out io.Writer) *Dashboard {
	styled := cfg.Dashboard.Color && isTerminal(out)
	return &Dashboard{
		Config:   cfg,
		Provider: provider,
		Sampler:  sampler,
		Renderer: render.New(out, styled),
		Analyzer: analyze.New(in, out, term),
		stdinTTY: isTerminal(in),
	}
}

// Run performs a single pass and maps its outcome to an exit code.
func (d *Dashboard) Run(ctx context.Context) (ExitCode, error) {
	snap, err := d.Provider.Refresh(ctx)
	if err != nil {
		return ExitFailure, err
	}

	top := ranker.Top(ctx, snap, d.Sampler)
	d.Renderer.Render(snap, top)

	if file := d.Config.Report.File; file != "" {
		rec := report.NewRecord(snap, top, analyze.Heavy(top))
		if err := report.WriteToFile(rec, file); err != nil {
			logger.Warn("Failed to write report to %s: %v", file, err)
		} else {
			logger.Debug("Wrote run %s to %s", rec.RunID, file)
		}
	}

	var res analyze.Result
	switch {
	case !d.Config.Dashboard.Interactive:
		res = d.Analyzer.Report(top)
	case d.Config.Dashboard.RequireTTY && !d.stdinTTY:
		logger.Warn("stdin is not a terminal, skipping the terminate prompt")
		res = d.Analyzer.Report(top)
	default:
		res = d.Analyzer.Run(ctx, top)
	}
	logger.Info("Analysis finished: %s (%d heavy)", res.Outcome, len(res.Heavy))

	if res.Outcome == analyze.OutcomeTerminateFailed {
		return ExitTerminateFailed, res.Err
	}
	return ExitOK, nil
}

// isTerminal reports false for anything that is not an *os.File.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return render.IsTerminal(f)
}
