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

// pulse/internal/metrics/metriccollector/system/cpu.go
// Package system provides the provider collectors for host hardware
// (CPU/RAM/DISK/NET/SENSORS) and the process table, backed by gopsutil.

package system

import (
	"context"
	"fmt"
	"time"

	"github.com/devpospicha/pulse/internal/model"
	"github.com/shirou/gopsutil/v4/cpu"
)

// CPUCollector samples per-core utilisation over a short window.
type CPUCollector struct {
	interval time.Duration
}

// NewCPUCollector creates a new CPUCollector instance.
// A non-positive interval falls back to 200ms; gopsutil needs an elapsed
// window between two readings for the percentages to mean anything.
func NewCPUCollector(interval time.Duration) *CPUCollector {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &CPUCollector{interval: interval}
}

func (c *CPUCollector) Name() string {
	return "cpu"
}

// Collect records usage for every core and the global usage as their mean.
func (c *CPUCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	perCore, err := cpu.PercentWithContext(ctx, c.interval, true)
	if err != nil {
		return fmt.Errorf("failed to sample cpu usage: %w", err)
	}
	snap.CPUs, snap.GlobalCPU = coreUsage(perCore)
	return nil
}

func coreUsage(perCore []float64) ([]model.CPUUsage, float64) {
	cores := make([]model.CPUUsage, 0, len(perCore))
	var sum float64
	for i, v := range perCore {
		cores = append(cores, model.CPUUsage{Name: formatCore(i), UsagePercent: v})
		sum += v
	}
	if len(perCore) == 0 {
		return cores, 0
	}
	return cores, sum / float64(len(perCore))
}

// formatCore names cores the way the dashboard labels them.
func formatCore(i int) string {
	return fmt.Sprintf("cpu%d", i)
}
