package metriccollector

import (
	"context"
	"fmt"
	"time"

	"github.com/devpospicha/pulse/internal/config"
	"github.com/devpospicha/pulse/internal/logger"
	"github.com/devpospicha/pulse/internal/metrics/metriccollector/system"
	"github.com/devpospicha/pulse/internal/model"
)

// ProcessSource is the name of the collector every registry carries.
const ProcessSource = "processes"

// Registry is the OS metrics provider: it holds the active collectors and
// produces a fresh snapshot on every Refresh.
type Registry struct {
	collectors []Collector
	now        func() time.Time
}

// NewRegistry registers the collectors enabled in the configuration.
// Unknown names are logged and skipped. The process collector is always
// registered, last, because ranking depends on it.
func NewRegistry(cfg *config.Config) *Registry {
	var collectors []Collector
	seen := make(map[string]bool)

	for _, name := range cfg.Metrics.Sources {
		if seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case "host":
			collectors = append(collectors, system.NewHostCollector())
		case "cpu":
			collectors = append(collectors, system.NewCPUCollector(cfg.Metrics.CPUSampleInterval))
		case "mem":
			collectors = append(collectors, system.NewMemCollector())
		case "disk":
			collectors = append(collectors, system.NewDiskCollector())
		case "net":
			collectors = append(collectors, system.NewNetworkCollector())
		case "sensors":
			collectors = append(collectors, system.NewSensorCollector())
		case ProcessSource:
			// registered below
		default:
			logger.Warn("Unknown collector: %s (skipping)", name)
		}
	}
	collectors = append(collectors, system.NewProcessCollector())

	logger.Debug("Loaded %d metric collectors", len(collectors))
	return NewRegistryWith(collectors...)
}

// NewRegistryWith builds a registry from explicit collectors.
func NewRegistryWith(collectors ...Collector) *Registry {
	return &Registry{collectors: collectors, now: time.Now}
}

// Names lists the registered collectors in run order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.collectors))
	for _, c := range r.collectors {
		names = append(names, c.Name())
	}
	return names
}

// Refresh runs every collector against a new snapshot. Failing collectors
// are logged and leave their section empty, except the process collector,
// whose failure fails the refresh.
func (r *Registry) Refresh(ctx context.Context) (*model.Snapshot, error) {
	snap := model.NewSnapshot(r.now())

	for _, c := range r.collectors {
		if err := c.Collect(ctx, snap); err != nil {
			if c.Name() == ProcessSource {
				return nil, fmt.Errorf("failed to collect processes: %w", err)
			}
			logger.Warn("Error collecting %s data: %v", c.Name(), err)
			continue
		}
	}
	logger.Debug("Refreshed snapshot: %d processes, %d cores", len(snap.Processes), len(snap.CPUs))
	return snap, nil
}
