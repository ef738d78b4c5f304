package system

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/devpospicha/pulse/internal/model"
	"github.com/shirou/gopsutil/v4/disk"
)

type DiskCollector struct {
	goos string
}

// NewDiskCollector creates a collector for mounted filesystems. Virtual,
// pseudo and temp filesystems are skipped on Linux/macOS; on Windows,
// reserved, empty and unmounted drives are skipped.
func NewDiskCollector() *DiskCollector {
	return &DiskCollector{goos: runtime.GOOS}
}

func (c *DiskCollector) Name() string {
	return "disk"
}

func (c *DiskCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to get disk partitions: %w", err)
	}

	for _, p := range partitions {
		if skipPartition(c.goos, p) {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage == nil {
			continue
		}
		snap.Disks = append(snap.Disks, model.Disk{
			Name:           strings.TrimPrefix(p.Device, `\\.\`),
			MountPoint:     p.Mountpoint,
			TotalBytes:     usage.Total,
			AvailableBytes: usage.Free,
		})
	}
	return nil
}

func skipPartition(goos string, p disk.PartitionStat) bool {
	if goos == "windows" {
		return p.Fstype == "" || p.Mountpoint == ""
	}
	// Inside a container the root filesystem is an overlay; keep it.
	if p.Fstype == "overlay" {
		return p.Mountpoint != "/"
	}
	return strings.HasPrefix(p.Mountpoint, "/sys") ||
		strings.HasPrefix(p.Mountpoint, "/proc") ||
		strings.HasPrefix(p.Mountpoint, "/run") ||
		p.Fstype == "tmpfs" || p.Fstype == "devtmpfs"
}
