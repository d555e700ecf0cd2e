package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIntervalDefaultsToConfig(t *testing.T) {
	interval, err := resolveInterval(100*time.Millisecond, false, 25*time.Millisecond)
	require.NoError(t, err)

	// The flag default is ignored unless the flag was actually set.
	assert.Equal(t, 100*time.Millisecond, interval)
}

func TestResolveIntervalFlagWins(t *testing.T) {
	interval, err := resolveInterval(100*time.Millisecond, true, 250*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, interval)
}

func TestResolveIntervalRejectsNonPositiveFlag(t *testing.T) {
	for _, flag := range []time.Duration{0, -time.Second} {
		_, err := resolveInterval(100*time.Millisecond, true, flag)
		require.Error(t, err, "flag %s", flag)
		assert.Contains(t, err.Error(), "must be positive")
	}
}
