//go:build linux
// +build linux

package system

import (
	"context"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpospicha/pulse/internal/model"
)

func TestProcessCollectorIncludesSelf(t *testing.T) {
	snap := model.NewSnapshot(time.Now())

	require.NoError(t, NewProcessCollector().Collect(context.Background(), snap))
	require.NotEmpty(t, snap.Processes)

	assert.True(t, sort.SliceIsSorted(snap.Processes, func(i, j int) bool {
		return snap.Processes[i].PID < snap.Processes[j].PID
	}))

	self := int32(os.Getpid())
	var found bool
	for _, p := range snap.Processes {
		if p.PID == self {
			found = true
			assert.NotEmpty(t, p.Name)
			assert.NotZero(t, p.MemoryBytes)
		}
	}
	assert.True(t, found, "own pid %d missing from process table", self)
}

func TestCPUCollectorReportsCores(t *testing.T) {
	snap := model.NewSnapshot(time.Now())

	require.NoError(t, NewCPUCollector(50*time.Millisecond).Collect(context.Background(), snap))

	require.NotEmpty(t, snap.CPUs)
	assert.Equal(t, "cpu0", snap.CPUs[0].Name)
	assert.GreaterOrEqual(t, snap.GlobalCPU, 0.0)
}

func TestMemAndHostCollectors(t *testing.T) {
	snap := model.NewSnapshot(time.Now())
	ctx := context.Background()

	require.NoError(t, NewMemCollector().Collect(ctx, snap))
	require.NoError(t, NewHostCollector().Collect(ctx, snap))

	assert.NotZero(t, snap.Memory.TotalBytes)
	assert.NotEmpty(t, snap.Host.KernelVersion)
}
