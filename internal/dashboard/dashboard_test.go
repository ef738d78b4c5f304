package dashboard

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpospicha/pulse/internal/config"
	"github.com/devpospicha/pulse/internal/model"
	"github.com/devpospicha/pulse/internal/processes/cpusampler"
)

type fakeProvider struct {
	snap *model.Snapshot
	err  error
}

func (f fakeProvider) Refresh(context.Context) (*model.Snapshot, error) {
	return f.snap, f.err
}

type recordingTerminator struct {
	calls []int32
	err   error
}

func (r *recordingTerminator) Terminate(_ context.Context, pid int32) error {
	r.calls = append(r.calls, pid)
	return r.err
}

func snapshot() *model.Snapshot {
	snap := model.NewSnapshot(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	snap.Host.Hostname = "box"
	snap.Processes = []model.RawProcess{
		{PID: 101, Name: "chrome", MemoryBytes: 800 << 20},
		{PID: 202, Name: "bash", MemoryBytes: 5 << 20},
	}
	return snap
}

func newTestDashboard(cfg *config.Config, input string, term *recordingTerminator, p Provider) (*Dashboard, *bytes.Buffer) {
	var out bytes.Buffer
	d := NewWith(cfg, p, cpusampler.Static{101: 45.2}, term, strings.NewReader(input), &out)
	return d, &out
}

func TestRunDeclined(t *testing.T) {
	term := &recordingTerminator{}
	d, out := newTestDashboard(config.Default(), "n\n", term, fakeProvider{snap: snapshot()})

	code, err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, term.calls)
	assert.Contains(t, out.String(), "TOP PROCESSES (CPU)")
	assert.Contains(t, out.String(), "• PID 101 (chrome)")
	assert.Less(t, strings.Index(out.String(), "TOP PROCESSES"), strings.Index(out.String(), "(y/n)"))
}

func TestRunTerminates(t *testing.T) {
	term := &recordingTerminator{}
	d, _ := newTestDashboard(config.Default(), "y\n101\n", term, fakeProvider{snap: snapshot()})

	code, err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, []int32{101}, term.calls)
}

func TestRunInvalidPIDExitsOK(t *testing.T) {
	term := &recordingTerminator{}
	d, _ := newTestDashboard(config.Default(), "y\nabc\n", term, fakeProvider{snap: snapshot()})

	code, err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, term.calls)
}

func TestRunTerminateFailure(t *testing.T) {
	term := &recordingTerminator{err: errors.New("no such process")}
	d, _ := newTestDashboard(config.Default(), "y\n9999999\n", term, fakeProvider{snap: snapshot()})

	code, err := d.Run(context.Background())

	assert.Equal(t, ExitTerminateFailed, code)
	assert.EqualError(t, err, "no such process")
	assert.Equal(t, []int32{9999999}, term.calls)
}

func TestRunProviderFailure(t *testing.T) {
	d, out := newTestDashboard(config.Default(), "", &recordingTerminator{}, fakeProvider{err: errors.New("boom")})

	code, err := d.Run(context.Background())

	assert.Equal(t, ExitFailure, code)
	assert.EqualError(t, err, "boom")
	assert.Empty(t, out.String())
}

func TestRunNonInteractive(t *testing.T) {
	cfg := config.Default()
	cfg.Dashboard.Interactive = false
	term := &recordingTerminator{}
	d, out := newTestDashboard(cfg, "y\n101\n", term, fakeProvider{snap: snapshot()})

	code, err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, term.calls)
	assert.Contains(t, out.String(), "PID 101")
	assert.NotContains(t, out.String(), "(y/n)")
}

func TestRunRequireTTYSkipsPrompt(t *testing.T) {
	cfg := config.Default()
	cfg.Dashboard.RequireTTY = true
	term := &recordingTerminator{}
	d, out := newTestDashboard(cfg, "y\n101\n", term, fakeProvider{snap: snapshot()})

	_, err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, term.calls)
	assert.NotContains(t, out.String(), "(y/n)")
}

func TestRunWritesReport(t *testing.T) {
	cfg := config.Default()
	cfg.Report.File = filepath.Join(t.TempDir(), "pulse.json")

	for i := 0; i < 2; i++ {
		d, _ := newTestDashboard(cfg, "n\n", &recordingTerminator{}, fakeProvider{snap: snapshot()})
		_, err := d.Run(context.Background())
		require.NoError(t, err)
	}

	f, err := os.Open(cfg.Report.File)
	require.NoError(t, err)
	defer f.Close()
	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), `"run_id"`)
	assert.Contains(t, scanner.Text(), `"pid":101`)
	assert.False(t, scanner.Scan(), "the file holds only the latest run")
}

func TestNewRejectsUnknownTerminateMethod(t *testing.T) {
	cfg := config.Default()
	cfg.Terminate.Method = "pray"

	_, err := New(cfg, strings.NewReader(""), &bytes.Buffer{})

	assert.Error(t, err)
}

func TestNewIsUnstyledForBuffers(t *testing.T) {
	d, err := New(config.Default(), strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, d.Renderer.Styled)
	assert.False(t, d.stdinTTY)
}
