// Package analyze flags resource-heavy processes and drives the operator
// prompt that may terminate one of them.
package analyze

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/devpospicha/pulse/internal/logger"
	"github.com/devpospicha/pulse/internal/model"
	"github.com/devpospicha/pulse/internal/terminate"
)

// Fixed thresholds. A process is heavy when it meets either one.
const (
	CPUThreshold      = 20.0
	MemoryThresholdMB = 500
)

// IsHeavy reports whether p meets the CPU or the memory threshold.
func IsHeavy(p model.ProcessInfo) bool {
	return p.CPU >= CPUThreshold || p.MemoryMB >= MemoryThresholdMB
}

// Heavy returns the heavy processes in input order.
func Heavy(procs []model.ProcessInfo) []model.ProcessInfo {
	var heavy []model.ProcessInfo
	for _, p := range procs {
		if IsHeavy(p) {
			heavy = append(heavy, p)
		}
	}
	return heavy
}

// Outcome is how one analysis flow ended.
type Outcome int

const (
	OutcomeAllClear Outcome = iota
	OutcomeReported
	OutcomeDeclined
	OutcomeInvalidPID
	OutcomeTerminated
	OutcomeTerminateFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAllClear:
		return "all-clear"
	case OutcomeReported:
		return "reported"
	case OutcomeDeclined:
		return "declined"
	case OutcomeInvalidPID:
		return "invalid-pid"
	case OutcomeTerminated:
		return "terminated"
	case OutcomeTerminateFailed:
		return "terminate-failed"
	default:
		return "unknown"
	}
}

// Result describes a finished flow. PID is set once a PID was accepted;
// Err carries the termination failure.
type Result struct {
	Outcome Outcome
	Heavy   []model.ProcessInfo
	PID     int32
	Err     error
}

// Analyzer is the interactive driver. It reads single-line answers from In
// and writes prompts to Out; both block without timeout.
type Analyzer struct {
	In         io.Reader
	Out        io.Writer
	Terminator terminate.Terminator
}

// New creates an Analyzer.
func New(in io.Reader, out io.Writer, t terminate.Terminator) *Analyzer {
	return &Analyzer{In: in, Out: out, Terminator: t}
}

// Report prints the heavy processes, or the all-clear line, and returns
// them without prompting.
func (a *Analyzer) Report(procs []model.ProcessInfo) Result {
	heavy := Heavy(procs)
	if len(heavy) == 0 {
		fmt.Fprintln(a.Out, "\n✅ No high resource consuming processes detected.")
		return Result{Outcome: OutcomeAllClear}
	}

	fmt.Fprintln(a.Out, "\n⚠️  High resource consuming processes detected:")
	fmt.Fprintln(a.Out)
	for _, p := range heavy {
		fmt.Fprintf(a.Out, "• PID %d (%s) → CPU: %.1f%% | MEM: %d MB\n", p.PID, p.Name, p.CPU, p.MemoryMB)
	}
	return Result{Outcome: OutcomeReported, Heavy: heavy}
}

// Run reports heavy processes and, if there are any, asks whether to
// terminate one. At most one termination request is issued. The entered
// PID is forwarded as long as it parses; it does not have to be listed.
func (a *Analyzer) Run(ctx context.Context, procs []model.ProcessInfo) Result {
	res := a.Report(procs)
	if res.Outcome == OutcomeAllClear {
		return res
	}

	reader := bufio.NewReader(a.In)

	fmt.Fprint(a.Out, "\nDo you want to terminate any process? (y/n): ")
	choice := readLine(reader)
	if !strings.EqualFold(choice, "y") {
		fmt.Fprintln(a.Out, "✔ No processes terminated.")
		res.Outcome = OutcomeDeclined
		return res
	}

	fmt.Fprint(a.Out, "Enter PID to terminate: ")
	input := readLine(reader)
	pid, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		fmt.Fprintf(a.Out, "❌ Invalid PID: %q\n", input)
		res.Outcome = OutcomeInvalidPID
		return res
	}
	res.PID = int32(pid)

	if !listed(res.Heavy, res.PID) {
		fmt.Fprintf(a.Out, "Note: PID %d was not in the list above.\n", res.PID)
	}

	logger.Info("Terminating PID %d on operator request", res.PID)
	if err := a.Terminator.Terminate(ctx, res.PID); err != nil {
		logger.Error("Terminate PID %d failed: %v", res.PID, err)
		fmt.Fprintf(a.Out, "❌ Failed to kill process: %v\n", err)
		res.Outcome = OutcomeTerminateFailed
		res.Err = err
		return res
	}

	fmt.Fprintf(a.Out, "✅ Process %d terminated successfully.\n", res.PID)
	res.Outcome = OutcomeTerminated
	return res
}

// readLine returns one trimmed line. EOF yields whatever was read, so a
// closed stdin counts as an empty answer.
func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to read operator input: %v", err)
	}
	return strings.TrimSpace(line)
}

func listed(procs []model.ProcessInfo, pid int32) bool {
	for _, p := range procs {
		if p.PID == pid {
			return true
		}
	}
	return false
}
