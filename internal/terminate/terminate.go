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

// pulse/internal/terminate/terminate.go
// Package terminate issues forceful termination requests to the host OS.
// All platform branching lives here; callers only see Terminator.

package terminate

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidPID is returned for PIDs <= 0. Signals to PID 0 or negative
// PIDs address process groups or every process, so they are never sent.
var ErrInvalidPID = errors.New("invalid pid")

// Terminator forcefully stops a process. It does not retry and does not
// wait to confirm the process actually exited.
type Terminator interface {
	Terminate(ctx context.Context, pid int32) error
}

// New returns the Terminator for the configured method: "signal" (the
// default) or "command".
func New(method string) (Terminator, error) {
	switch method {
	case "", "signal":
		return SignalTerminator{}, nil
	case "command":
		return NewCommandTerminator(), nil
	default:
		return nil, fmt.Errorf("unknown terminate method %q", method)
	}
}

func validatePID(pid int32) error {
	if pid <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	return nil
}
