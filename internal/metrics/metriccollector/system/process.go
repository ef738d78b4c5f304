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

// pulse/internal/metrics/metriccollector/system/process.go

package system

import (
	"context"
	"sort"
	"strings"

	"github.com/devpospicha/pulse/internal/model"
	"github.com/shirou/gopsutil/v4/process"
)

// ProcessCollector captures the running process table: name and resident
// memory per PID. CPU is deliberately not sampled here; it comes from the
// secondary sampler.
type ProcessCollector struct{}

func NewProcessCollector() *ProcessCollector {
	return &ProcessCollector{}
}

func (c *ProcessCollector) Name() string {
	return "processes"
}

// Collect lists processes in ascending PID order. Processes that exit
// between listing and reading are skipped.
func (c *ProcessCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return err
	}

	all := make([]model.RawProcess, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		info := model.RawProcess{PID: p.Pid, Name: sanitizeName(name)}
		if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
			info.MemoryBytes = mem.RSS
		}
		all = append(all, info)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PID < all[j].PID
	})
	snap.Processes = all
	return nil
}

// sanitizeName keeps display names valid UTF-8.
func sanitizeName(name string) string {
	return strings.ToValidUTF8(name, "�")
}
