// Package ranker merges the provider's process table with the sampler's
// CPU readings into the top-N view shown on the dashboard.
//
// The two inputs are captured at slightly different instants, so a PID may
// be missing from one side or have exited in between. Results are
// best-effort display values, not accounting data.
package ranker

import (
	"context"
	"sort"

	"github.com/devpospicha/pulse/internal/logger"
	"github.com/devpospicha/pulse/internal/model"
	"github.com/devpospicha/pulse/internal/processes/cpusampler"
)

// TopN is the number of processes kept after ranking.
const TopN = 10

const bytesPerMiB = 1024 * 1024

// Rank builds ProcessInfo records from procs, taking CPU from cpu by PID
// (0.0 when absent), sorts them by CPU descending and keeps the first TopN.
// Equal CPU values keep the order of procs. Rank does not modify its inputs.
func Rank(procs []model.RawProcess, cpu map[int32]float64) []model.ProcessInfo {
	all := make([]model.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		all = append(all, model.ProcessInfo{
			PID:      p.PID,
			Name:     p.Name,
			CPU:      cpu[p.PID],
			MemoryMB: p.MemoryBytes / bytesPerMiB,
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CPU > all[j].CPU
	})

	if len(all) > TopN {
		all = all[:TopN]
	}
	return all
}

// Top samples CPU usage and ranks the snapshot's processes. A sampler
// failure is logged and every process is ranked with 0.0% CPU.
func Top(ctx context.Context, snap *model.Snapshot, sampler cpusampler.Sampler) []model.ProcessInfo {
	cpu, err := sampler.Sample(ctx)
	if err != nil {
		logger.Warn("CPU sampler unavailable, showing 0.0%% for all processes: %v", err)
		cpu = nil
	}
	return Rank(snap.Processes, cpu)
}
