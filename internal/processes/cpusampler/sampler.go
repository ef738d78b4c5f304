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

// pulse/internal/processes/cpusampler/sampler.go
// Package cpusampler reads per-process CPU usage from an external one-shot
// utility such as `ps -axo pid,pcpu`. A single invocation gives meaningful
// percentages without the provider's two-refresh sampling window.

package cpusampler

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/devpospicha/pulse/internal/config"
)

// Sampler returns a PID -> CPU% map. Implementations always return a
// non-nil map, empty on failure, so callers can degrade to 0.0% per process.
type Sampler interface {
	Sample(ctx context.Context) (map[int32]float64, error)
}

// CommandSampler runs an external utility and parses its output.
type CommandSampler struct {
	Command string
	Args    []string
}

// NewCommandSampler creates a sampler from the sampler config section.
func NewCommandSampler(cfg config.SamplerConfig) *CommandSampler {
	return &CommandSampler{Command: cfg.Command, Args: cfg.Args}
}

// Sample executes the utility. When it cannot be started or exits with an
// error, Sample returns an empty map together with the error.
func (s *CommandSampler) Sample(ctx context.Context) (map[int32]float64, error) {
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return map[int32]float64{}, fmt.Errorf("cpu sampler %q failed: %w: %s", s.Command, err, msg)
		}
		return map[int32]float64{}, fmt.Errorf("cpu sampler %q failed: %w", s.Command, err)
	}
	return ParseCPUTable(bytes.NewReader(out)), nil
}

// ParseCPUTable parses whitespace-delimited "PID CPU%" rows. The first row
// is a header and is skipped. Rows with fewer than two fields or values
// that do not parse, or are not finite non-negative percentages, are
// skipped silently. Extra columns are ignored.
func ParseCPUTable(r io.Reader) map[int32]float64 {
	out := make(map[int32]float64)

	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			continue
		}
		cpu, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(cpu) || math.IsInf(cpu, 0) || cpu < 0 {
			continue
		}
		out[int32(pid)] = cpu
	}
	return out
}

// Static is a Sampler over a fixed map, for callers that already captured
// CPU data.
type Static map[int32]float64

func (s Static) Sample(context.Context) (map[int32]float64, error) {
	out := make(map[int32]float64, len(s))
	for pid, cpu := range s {
		out[pid] = cpu
	}
	return out, nil
}
