package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.WarnLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" INFO ", zerolog.InfoLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetOutputFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.WarnLevel)

	Info("hidden %d", 1)
	Warn("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestInitLoggerRoutesErrorsToErrorFile(t *testing.T) {
	dir := t.TempDir()
	app := filepath.Join(dir, "logs", "app.log")
	errLog := filepath.Join(dir, "logs", "error.log")

	require.NoError(t, InitLogger(app, errLog, "info"))
	t.Cleanup(Close)

	Info("collected %d processes", 3)
	Error("terminate failed: %s", "permission denied")
	Close()

	appData, err := os.ReadFile(app)
	require.NoError(t, err)
	errData, err := os.ReadFile(errLog)
	require.NoError(t, err)

	assert.Contains(t, string(appData), "collected 3 processes")
	assert.Contains(t, string(appData), "terminate failed")
	assert.NotContains(t, string(errData), "collected 3 processes")
	assert.Contains(t, string(errData), "permission denied")
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	assert.Error(t, InitLogger("", "", "verbose"))
}

func TestCloseFallsBackToConsole(t *testing.T) {
	var console bytes.Buffer
	consoleOut = &console
	t.Cleanup(func() { consoleOut = os.Stderr })

	app := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, InitLogger(app, "", "info"))
	Close()

	Warn("late warning %d", 7)

	appData, err := os.ReadFile(app)
	require.NoError(t, err)
	assert.NotContains(t, string(appData), "late warning 7")
	assert.Contains(t, console.String(), "late warning 7")

	Debug("below level")
	assert.NotContains(t, console.String(), "below level")
}
