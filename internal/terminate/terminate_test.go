package terminate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tr, err := New("")
	require.NoError(t, err)
	assert.IsType(t, SignalTerminator{}, tr)

	tr, err = New("signal")
	require.NoError(t, err)
	assert.IsType(t, SignalTerminator{}, tr)

	tr, err = New("command")
	require.NoError(t, err)
	assert.IsType(t, &CommandTerminator{}, tr)

	_, err = New("pray")
	assert.Error(t, err)
}

func TestRejectsNonPositivePIDs(t *testing.T) {
	terminators := map[string]Terminator{
		"signal":  SignalTerminator{},
		"command": NewCommandTerminator(),
	}
	for name, tr := range terminators {
		for _, pid := range []int32{0, -1, -2147483648} {
			err := tr.Terminate(context.Background(), pid)
			assert.ErrorIs(t, err, ErrInvalidPID, "%s terminator, pid %d", name, pid)
		}
	}
}

func TestCommandFor(t *testing.T) {
	name, args := commandFor("linux", 4242)
	assert.Equal(t, "kill", name)
	assert.Equal(t, []string{"-9", "4242"}, args)

	name, args = commandFor("darwin", 1)
	assert.Equal(t, "kill", name)
	assert.Equal(t, []string{"-9", "1"}, args)

	name, args = commandFor("windows", 9999999)
	assert.Equal(t, "taskkill", name)
	assert.Equal(t, []string{"/PID", "9999999", "/F"}, args)
}
