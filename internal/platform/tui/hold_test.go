package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	base := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	h.Press(core.ActionLeft, base)
	require.True(t, h.IsHeld(core.ActionLeft, base.Add(50*time.Millisecond)))
	require.False(t, h.IsHeld(core.ActionLeft, base.Add(100*time.Millisecond)))

	// Auto-repeat extends the hold.
	h.Press(core.ActionLeft, base.Add(80*time.Millisecond))
	require.True(t, h.IsHeld(core.ActionLeft, base.Add(150*time.Millisecond)))
}

func TestHoldTrackerDefaultWindow(t *testing.T) {
	require.Equal(t, DefaultHoldWindow, NewHoldTracker(0).Window)
}

func TestHoldTrackerApply(t *testing.T) {
	base := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)
	frame := core.NewInputFrame()

	h.Press(core.ActionRight, base)
	h.Apply(&frame, base.Add(10*time.Millisecond))
	require.True(t, frame.IsHeld(core.ActionRight))

	frame.Clear()
	require.True(t, frame.IsHeld(core.ActionRight), "held state survives Clear")

	h.Apply(&frame, base.Add(200*time.Millisecond))
	require.False(t, frame.IsHeld(core.ActionRight))
	require.Empty(t, h.last)
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	base := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, base)
	h.Apply(&frame, base)
	require.True(t, frame.IsHeld(core.ActionLeft))

	h.Press(core.ActionRight, base.Add(20*time.Millisecond))
	h.Apply(&frame, base.Add(30*time.Millisecond))
	require.False(t, frame.IsHeld(core.ActionLeft))
	require.True(t, frame.IsHeld(core.ActionRight))
}

func TestHoldTrackerReset(t *testing.T) {
	base := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, base)
	h.Apply(&frame, base)
	h.Reset()
	require.False(t, h.IsHeld(core.ActionLeft, base))

	h.Apply(&frame, base)
	require.False(t, frame.IsHeld(core.ActionLeft))
}
