package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellSubmitRequiresInput(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n  "} {
		s := NewShell()
		assert.Error(t, s.Submit(input), "input %q", input)
		assert.Equal(t, StateIdle, s.State())
	}
}

func TestShellCycle(t *testing.T) {
	s := NewShell()

	require.NoError(t, s.Submit("hola"))
	assert.True(t, s.Sending())

	require.NoError(t, s.Succeed())
	assert.Equal(t, StateIdle, s.State())

	require.NoError(t, s.Submit("otra"))
	require.NoError(t, s.Fail())
	assert.Equal(t, StateIdleWithError, s.State())

	// Retrying from the error state is allowed.
	require.NoError(t, s.Submit("de nuevo"))
	assert.Equal(t, StateSending, s.State())
}

func TestShellRejectsSecondSubmitWhileSending(t *testing.T) {
	s := NewShell()
	require.NoError(t, s.Submit("uno"))

	assert.Error(t, s.Submit("dos"))
	assert.Equal(t, StateSending, s.State())
}

func TestShellReset(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		s := NewShell()
		require.NoError(t, s.Reset())
		assert.Equal(t, StateIdle, s.State())
	})

	t.Run("idle with error", func(t *testing.T) {
		s := NewShell()
		require.NoError(t, s.Submit("x"))
		require.NoError(t, s.Fail())

		require.NoError(t, s.Reset())
		assert.Equal(t, StateIdle, s.State())
	})

	t.Run("sending stays sending until discard", func(t *testing.T) {
		s := NewShell()
		require.NoError(t, s.Submit("x"))

		require.NoError(t, s.Reset())
		assert.Equal(t, StateSending, s.State())

		require.NoError(t, s.Discard())
		assert.Equal(t, StateIdle, s.State())
	})
}

func TestShellRejectsResultsWhenIdle(t *testing.T) {
	s := NewShell()
	assert.Error(t, s.Succeed())
	assert.Error(t, s.Fail())
	assert.Error(t, s.Discard())
	assert.Equal(t, StateIdle, s.State())
}
