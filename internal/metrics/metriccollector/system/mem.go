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

// pulse/internal/metrics/metriccollector/system/mem.go

package system

import (
	"context"
	"fmt"

	"github.com/devpospicha/pulse/internal/logger"
	"github.com/devpospicha/pulse/internal/model"
	"github.com/shirou/gopsutil/v4/mem"
)

type MEMCollector struct{}

// NewMemCollector creates a new MEMCollector instance.
func NewMemCollector() *MEMCollector {
	return &MEMCollector{}
}

func (c *MEMCollector) Name() string {
	return "mem"
}

// Collect reads physical memory totals and swap usage. Missing swap is not
// an error.
func (c *MEMCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	memory, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to get memory info: %w", err)
	}
	snap.Memory = model.MemoryInfo{
		TotalBytes:     memory.Total,
		UsedBytes:      memory.Used,
		AvailableBytes: memory.Available,
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		logger.Warn("Error getting swap memory info: %v", err)
		return nil
	}
	if swap != nil {
		snap.Memory.SwapUsedBytes = swap.Used
	}
	return nil
}
