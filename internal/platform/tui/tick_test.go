package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameClock(t *testing.T) {
	var c FrameClock
	base := time.Unix(100, 0)

	require.Equal(t, 0.0, c.Now(base))
	require.InDelta(t, 16.5, c.Now(base.Add(16500*time.Microsecond)), 1e-9)
	require.InDelta(t, 1000.0, c.Now(base.Add(time.Second)), 1e-9)

	// A clock step backwards is clamped.
	require.InDelta(t, 1000.0, c.Now(base.Add(500*time.Millisecond)), 1e-9)
}

func TestTickCmd(t *testing.T) {
	require.NotNil(t, tickCmd(60))
	require.NotNil(t, tickCmd(0))
}
