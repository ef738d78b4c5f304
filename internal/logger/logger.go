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

// pulse/internal/logger/logger.go
// Printf-style logging on top of zerolog. Console output goes to stderr,
// the optional app log receives every level and the optional error log
// receives error and above.

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu    sync.RWMutex
	level = zerolog.WarnLevel
	log   = consoleLogger(zerolog.WarnLevel)
	files []*os.File

	consoleOut io.Writer = os.Stderr
)

func consoleWriter(lvl zerolog.Level) levelFilter {
	return levelFilter{w: zerolog.ConsoleWriter{Out: consoleOut, TimeFormat: "15:04:05"}, min: lvl}
}

func consoleLogger(lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(consoleWriter(lvl)).With().Timestamp().Logger()
}

// levelFilter forwards only events at or above min.
type levelFilter struct {
	w   io.Writer
	min zerolog.Level
}

func (f levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f levelFilter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < f.min {
		return len(p), nil
	}
	return f.w.Write(p)
}

// ParseLevel maps a config level name to a zerolog level.
// An empty string means warn.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "":
		return zerolog.WarnLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// InitLogger configures the package logger. Empty file paths disable the
// corresponding file sink.
func InitLogger(appLogFile, errorLogFile, levelName string) error {
	lvl, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	writers := []io.Writer{consoleWriter(lvl)}

	var opened []*os.File
	if appLogFile != "" {
		f, err := openLogFile(appLogFile)
		if err != nil {
			return err
		}
		opened = append(opened, f)
		writers = append(writers, levelFilter{w: f, min: lvl})
	}
	if errorLogFile != "" {
		f, err := openLogFile(errorLogFile)
		if err != nil {
			closeAll(opened)
			return err
		}
		opened = append(opened, f)
		writers = append(writers, levelFilter{w: f, min: zerolog.ErrorLevel})
	}

	zerolog.TimeFieldFormat = time.RFC3339

	mu.Lock()
	defer mu.Unlock()
	closeAll(files)
	files = opened
	level = lvl
	log = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return nil
}

// SetOutput redirects all logging to w at the given level. Used by tests.
func SetOutput(w io.Writer, lvl zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(levelFilter{w: w, min: lvl}).With().Timestamp().Logger()
}

// Close releases any log files opened by InitLogger. Later calls keep
// logging to the console at the configured level.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeAll(files)
	files = nil
	log = consoleLogger(level)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}

func closeAll(fs []*os.File) {
	for _, f := range fs {
		_ = f.Close()
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(format string, args ...interface{}) {
	l := current()
	l.Debug().Msgf(format, args...)
}

func Info(format string, args ...interface{}) {
	l := current()
	l.Info().Msgf(format, args...)
}

func Warn(format string, args ...interface{}) {
	l := current()
	l.Warn().Msgf(format, args...)
}

func Error(format string, args ...interface{}) {
	l := current()
	l.Error().Msgf(format, args...)
}
