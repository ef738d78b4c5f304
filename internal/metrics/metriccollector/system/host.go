package system

import (
	"context"
	"fmt"
	"strings"

	"github.com/devpospicha/pulse/internal/model"
	"github.com/shirou/gopsutil/v4/host"
)

type HostCollector struct{}

// NewHostCollector creates a collector for host name, OS, kernel and uptime.
func NewHostCollector() *HostCollector {
	return &HostCollector{}
}

func (c *HostCollector) Name() string {
	return "host"
}

func (c *HostCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to get host info: %w", err)
	}
	snap.Host = hostInfo(info)
	return nil
}

func hostInfo(info *host.InfoStat) model.HostInfo {
	osVersion := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if osVersion == "" {
		osVersion = info.OS
	}
	return model.HostInfo{
		Hostname:      info.Hostname,
		OSVersion:     osVersion,
		KernelVersion: info.KernelVersion,
		UptimeSeconds: info.Uptime,
	}
}
