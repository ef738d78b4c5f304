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

// pulse/internal/metrics/metriccollector/system/network.go
// Collects cumulative per-interface byte counters via gopsutil.

package system

import (
	"context"
	"fmt"

	"github.com/devpospicha/pulse/internal/model"
	"github.com/shirou/gopsutil/v4/net"
)

type NetworkCollector struct{}

func NewNetworkCollector() *NetworkCollector {
	return &NetworkCollector{}
}

func (c *NetworkCollector) Name() string {
	return "net"
}

func (c *NetworkCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	interfaces, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to get network IO counters: %w", err)
	}
	for _, iface := range interfaces {
		snap.Networks[iface.Name] = model.NetworkIO{
			ReceivedBytes:    iface.BytesRecv,
			TransmittedBytes: iface.BytesSent,
		}
	}
	return nil
}
