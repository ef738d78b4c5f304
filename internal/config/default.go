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

package config

import (
	"os"
	"path/filepath"
)

const defaultYAML = `# Log Config
logs:
  app_log_file: ""       # empty: console only
  error_log_file: ""
  log_level: "warn"      # debug, info, warn, error

metrics:
  sources:               # provider collectors; processes always run
    - host
    - cpu
    - mem
    - disk
    - net
    - sensors
  cpu_sample_interval: 200ms

# Authoritative per-process CPU source. Output: header row, then "PID CPU%" rows.
sampler:
  command: "ps"
  args: ["-axo", "pid,pcpu"]

terminate:
  method: "signal"       # signal (SIGKILL / TerminateProcess) or command (kill -9 / taskkill /F)

dashboard:
  interactive: true
  require_tty: false
  color: true

report:
  file: ""               # write the latest run as JSON when set
`

// EnsureDefaultConfig checks if the config file exists at the specified path.
// If it does not exist, it creates the directory structure and writes the default config to the file.
func EnsureDefaultConfig(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		return os.WriteFile(path, []byte(defaultYAML), 0644)
	}
	return nil
}
