/*
SPDX-License-Identifier: GPL-3.0-or-later

Copyright (C) 2025 Aaron Mathis aaron.mathis@gmail.com

This file is part of Pulse.

Pulse is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Pulse is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Pulse. If not, see https://www.gnu.org/licenses/.
*/

// pulse/internal/terminate/command.go

package terminate

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// CommandTerminator delivers the kill through the platform's own tool:
// `kill -9 <pid>` on POSIX systems, `taskkill /PID <pid> /F` on Windows.
// It blocks until the tool exits.
type CommandTerminator struct {
	goos string
}

func NewCommandTerminator() *CommandTerminator {
	return &CommandTerminator{goos: runtime.GOOS}
}

func (t *CommandTerminator) Terminate(ctx context.Context, pid int32) error {
	if err := validatePID(pid); err != nil {
		return err
	}

	name, args := commandFor(t.goos, pid)
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err == nil {
		return nil
	}

	msg := strings.TrimSpace(string(output))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && msg != "" {
		return fmt.Errorf("%s exited with code %d: %s", name, exitErr.ExitCode(), msg)
	}
	return fmt.Errorf("failed to run %s: %w", name, err)
}

func commandFor(goos string, pid int32) (string, []string) {
	id := strconv.FormatInt(int64(pid), 10)
	if goos == "windows" {
		return "taskkill", []string{"/PID", id, "/F"}
	}
	return "kill", []string{"-9", id}
}
