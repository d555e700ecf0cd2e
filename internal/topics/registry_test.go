package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	ResetForTesting()

	d := Descriptor{Name: "range", Description: "a range reading", Payload: "Range"}
	require.NoError(t, Register(d))

	got, exists := Get("range")
	assert.True(t, exists)
	assert.Equal(t, d, got)

	_, exists = Get("missing")
	assert.False(t, exists)
}

func TestRegisterDuplicate(t *testing.T) {
	ResetForTesting()

	require.NoError(t, Register(Descriptor{Name: "range"}))
	assert.Error(t, Register(Descriptor{Name: "range"}))
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	ResetForTesting()

	MustRegister(Descriptor{Name: "range"})
	assert.Panics(t, func() {
		MustRegister(Descriptor{Name: "range"})
	})
}

func TestListIsSorted(t *testing.T) {
	ResetForTesting()

	for _, name := range []string{"vector3", "header", "imu"} {
		require.NoError(t, Register(Descriptor{Name: name}))
	}

	assert.Equal(t, []string{"header", "imu", "vector3"}, Names())
}
