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

// pulse/internal/bootstrap/logger.go
// Initializes logger.
package bootstrap

import (
	"github.com/devpospicha/pulse/internal/config"
	"github.com/devpospicha/pulse/internal/logger"
)

func SetupLogging(cfg *config.Config) error {
	return logger.InitLogger(cfg.Logs.AppLogFile, cfg.Logs.ErrorLogFile, cfg.Logs.LogLevel)
}
