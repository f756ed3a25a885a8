package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press or auto-repeat.
const DefaultHoldWindow = 180 * time.Millisecond

// HoldTracker derives held-key state from press events. Terminals report
// presses and auto-repeats but never releases, so a key is held until
// Window has passed without another press. Pressing a direction releases
// the opposite one.
type HoldTracker struct {
	Window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{Window: window, last: make(map[core.Action]time.Time)}
}

// Press records a press of a at the given time.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionLeft:
		h.expire(core.ActionRight)
	case core.ActionRight:
		h.expire(core.ActionLeft)
	}
	h.last[a] = at
}

// expire marks a tracked action released; the next Apply clears it from
// the frame.
func (h *HoldTracker) expire(a core.Action) {
	if _, ok := h.last[a]; ok {
		h.last[a] = time.Time{}
	}
}

// IsHeld reports whether a is held at time now.
func (h *HoldTracker) IsHeld(a core.Action, now time.Time) bool {
	at, ok := h.last[a]
	return ok && !at.IsZero() && now.Sub(at) < h.Window
}

// Apply writes the held state of every tracked action into frame and
// forgets expired presses.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.last {
		held := h.IsHeld(a, now)
		frame.Hold(a, held)
		if !held {
			delete(h.last, a)
		}
	}
}

// Reset releases every key on the next Apply.
func (h *HoldTracker) Reset() {
	for a := range h.last {
		h.expire(a)
	}
}
