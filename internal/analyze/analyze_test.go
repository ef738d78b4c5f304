package analyze

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpospicha/pulse/internal/model"
)

type recordingTerminator struct {
	calls []int32
	err   error
}

func (r *recordingTerminator) Terminate(_ context.Context, pid int32) error {
	r.calls = append(r.calls, pid)
	return r.err
}

var heavyList = []model.ProcessInfo{
	{PID: 101, Name: "chrome", CPU: 45.2, MemoryMB: 800},
	{PID: 202, Name: "bash", CPU: 0.1, MemoryMB: 5},
	{PID: 303, Name: "java", CPU: 3.0, MemoryMB: 500},
}

func run(t *testing.T, input string, procs []model.ProcessInfo, term *recordingTerminator) (Result, string) {
	t.Helper()
	var out bytes.Buffer
	a := New(strings.NewReader(input), &out, term)
	return a.Run(context.Background(), procs), out.String()
}

func TestIsHeavyBoundaries(t *testing.T) {
	tests := []struct {
		name string
		p    model.ProcessInfo
		want bool
	}{
		{"cpu at threshold", model.ProcessInfo{CPU: 20.0}, true},
		{"cpu just below", model.ProcessInfo{CPU: 19.99, MemoryMB: 499}, false},
		{"memory at threshold", model.ProcessInfo{MemoryMB: 500}, true},
		{"memory just below", model.ProcessInfo{MemoryMB: 499}, false},
		{"both", model.ProcessInfo{CPU: 99, MemoryMB: 4096}, true},
		{"idle", model.ProcessInfo{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeavy(tt.p))
		})
	}
}

func TestHeavyMatchesPredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		procs := make([]model.ProcessInfo, rng.Intn(30))
		for i := range procs {
			procs[i] = model.ProcessInfo{
				PID:      int32(i + 1),
				CPU:      rng.Float64() * 40,
				MemoryMB: uint64(rng.Intn(1000)),
			}
		}

		heavy := Heavy(procs)

		var want []model.ProcessInfo
		for _, p := range procs {
			if p.CPU >= 20.0 || p.MemoryMB >= 500 {
				want = append(want, p)
			}
		}
		assert.Equal(t, want, heavy)
	}
}

func TestRunAllClear(t *testing.T) {
	term := &recordingTerminator{}

	res, out := run(t, "y\n1\n", []model.ProcessInfo{{PID: 1, CPU: 1, MemoryMB: 1}}, term)

	assert.Equal(t, OutcomeAllClear, res.Outcome)
	assert.Contains(t, out, "No high resource consuming processes detected")
	assert.NotContains(t, out, "(y/n)")
	assert.Empty(t, term.calls)
}

func TestRunListsHeavyInOrder(t *testing.T) {
	res, out := run(t, "n\n", heavyList, &recordingTerminator{})

	require.Len(t, res.Heavy, 2)
	assert.Equal(t, int32(101), res.Heavy[0].PID)
	assert.Equal(t, int32(303), res.Heavy[1].PID)
	assert.Contains(t, out, "• PID 101 (chrome) → CPU: 45.2% | MEM: 800 MB")
	assert.Contains(t, out, "• PID 303 (java) → CPU: 3.0% | MEM: 500 MB")
	assert.NotContains(t, out, "PID 202")
	assert.Less(t, strings.Index(out, "PID 101"), strings.Index(out, "PID 303"))
}

func TestRunDeclined(t *testing.T) {
	for _, input := range []string{"n\n", "no\n", "yes\n", "\n", "", "  N  \n"} {
		term := &recordingTerminator{}

		res, out := run(t, input, heavyList, term)

		assert.Equal(t, OutcomeDeclined, res.Outcome, "input %q", input)
		assert.Contains(t, out, "No processes terminated")
		assert.NotContains(t, out, "Enter PID")
		assert.Empty(t, term.calls, "input %q", input)
	}
}

func TestRunInvalidPID(t *testing.T) {
	for _, input := range []string{"y\nabc\n", "Y\n12.5\n", "y\n\n", "y\n99999999999\n"} {
		term := &recordingTerminator{}

		res, out := run(t, input, heavyList, term)

		assert.Equal(t, OutcomeInvalidPID, res.Outcome, "input %q", input)
		assert.Contains(t, out, "Invalid PID")
		assert.Equal(t, 1, strings.Count(out, "Enter PID to terminate"), "must not re-prompt")
		assert.Empty(t, term.calls)
	}
}

func TestRunForwardsUnlistedPID(t *testing.T) {
	term := &recordingTerminator{}

	res, out := run(t, "y\n9999999\n", heavyList, term)

	assert.Equal(t, []int32{9999999}, term.calls)
	assert.Equal(t, OutcomeTerminated, res.Outcome)
	assert.Equal(t, int32(9999999), res.PID)
	assert.Contains(t, out, "was not in the list above")
	assert.Contains(t, out, "Process 9999999 terminated successfully")
}

func TestRunTerminatesListedPID(t *testing.T) {
	term := &recordingTerminator{}

	res, out := run(t, " Y \n 101 \n", heavyList, term)

	assert.Equal(t, []int32{101}, term.calls)
	assert.Equal(t, OutcomeTerminated, res.Outcome)
	assert.NotContains(t, out, "was not in the list above")
}

func TestRunTerminateFailure(t *testing.T) {
	term := &recordingTerminator{err: errors.New("operation not permitted")}

	res, out := run(t, "y\n101\n", heavyList, term)

	assert.Equal(t, []int32{101}, term.calls)
	assert.Equal(t, OutcomeTerminateFailed, res.Outcome)
	assert.EqualError(t, res.Err, "operation not permitted")
	assert.Contains(t, out, "Failed to kill process: operation not permitted")
}

func TestRunPromptsAreDistinct(t *testing.T) {
	_, out := run(t, "y\n101\n", heavyList, &recordingTerminator{})

	yn := strings.Index(out, "(y/n)")
	pid := strings.Index(out, "Enter PID to terminate")
	require.NotEqual(t, -1, yn)
	require.NotEqual(t, -1, pid)
	assert.Less(t, yn, pid)
}

func TestReportDoesNotPrompt(t *testing.T) {
	var out bytes.Buffer
	a := New(strings.NewReader("y\n101\n"), &out, &recordingTerminator{})

	res := a.Report(heavyList)

	assert.Equal(t, OutcomeReported, res.Outcome)
	assert.NotContains(t, out.String(), "(y/n)")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "terminate-failed", OutcomeTerminateFailed.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}
