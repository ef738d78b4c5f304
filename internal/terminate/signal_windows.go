//go:build windows
// +build windows

package terminate

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

// SignalTerminator calls TerminateProcess on a handle opened for the PID.
type SignalTerminator struct{}

func (SignalTerminator) Terminate(_ context.Context, pid int32) error {
	if err := validatePID(pid); err != nil {
		return err
	}

	h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("failed to open process %d: %w", pid, err)
	}
	defer windows.CloseHandle(h)

	if err := windows.TerminateProcess(h, 1); err != nil {
		return fmt.Errorf("failed to terminate process %d: %w", pid, err)
	}
	return nil
}
