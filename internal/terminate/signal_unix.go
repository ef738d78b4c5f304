//go:build unix

package terminate

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// SignalTerminator sends SIGKILL directly.
type SignalTerminator struct{}

func (SignalTerminator) Terminate(_ context.Context, pid int32) error {
	if err := validatePID(pid); err != nil {
		return err
	}
	if err := unix.Kill(int(pid), unix.SIGKILL); err != nil {
		return fmt.Errorf("failed to kill process %d: %w", pid, err)
	}
	return nil
}
