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

// pulse/internal/model/process.go
// Package model contains the data structures shared by the collectors,
// the ranker, the analyzer and the renderer.

package model

// ProcessInfo is one ranked process as shown on the dashboard.
// CPU comes from the secondary sampler and MemoryMB is resident memory
// floor-divided to mebibytes. Values are point-in-time only.
type ProcessInfo struct {
	PID      int32   `json:"pid"`
	Name     string  `json:"name"`
	CPU      float64 `json:"cpu"`
	MemoryMB uint64  `json:"memory_mb"`
}

// RawProcess is a process as reported by the OS metrics provider,
// before CPU enrichment.
type RawProcess struct {
	PID         int32  `json:"pid"`
	Name        string `json:"name"`
	MemoryBytes uint64 `json:"memory_bytes"`
}
