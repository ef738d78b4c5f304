package model

import "time"

// Snapshot holds every reading captured by one provider refresh.
type Snapshot struct {
	Timestamp time.Time            `json:"timestamp"`
	Host      HostInfo             `json:"host"`
	CPUs      []CPUUsage           `json:"cpus"`
	GlobalCPU float64              `json:"global_cpu"`
	Memory    MemoryInfo           `json:"memory"`
	Disks     []Disk               `json:"disks"`
	Networks  map[string]NetworkIO `json:"networks"`
	Sensors   []Sensor             `json:"sensors"`

	// Processes keeps the provider's iteration order.
	Processes []RawProcess `json:"processes"`
}

type HostInfo struct {
	Hostname      string `json:"hostname"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
}

type CPUUsage struct {
	Name         string  `json:"name"`
	UsagePercent float64 `json:"usage_percent"`
}

type MemoryInfo struct {
	TotalBytes     uint64 `json:"total_bytes"`
	UsedBytes      uint64 `json:"used_bytes"`
	AvailableBytes uint64 `json:"available_bytes"`
	SwapUsedBytes  uint64 `json:"swap_used_bytes"`
}

type Disk struct {
	Name           string `json:"name"`
	MountPoint     string `json:"mount_point"`
	TotalBytes     uint64 `json:"total_bytes"`
	AvailableBytes uint64 `json:"available_bytes"`
}

type NetworkIO struct {
	ReceivedBytes    uint64 `json:"received_bytes"`
	TransmittedBytes uint64 `json:"transmitted_bytes"`
}

// Sensor is a temperature reading in degrees Celsius. Either value may be
// missing depending on the platform.
type Sensor struct {
	Label        string   `json:"label"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	MaxC         *float64 `json:"max_c,omitempty"`
}

// NewSnapshot returns an empty snapshot stamped with ts.
func NewSnapshot(ts time.Time) *Snapshot {
	return &Snapshot{
		Timestamp: ts,
		Networks:  make(map[string]NetworkIO),
	}
}
