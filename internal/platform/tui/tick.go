// Package tui provides the Bubble Tea integration for the invaders platform.
// It acts as scheduler, input layer and renderer around the game step.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FrameClock converts wall-clock tick times into monotonic millisecond
// timestamps relative to the first tick.
type FrameClock struct {
	start   time.Time
	last    float64
	started bool
}

// Now returns the timestamp of t in milliseconds since the first call.
// It never goes backwards, even if t does.
func (c *FrameClock) Now(t time.Time) float64 {
	if !c.started {
		c.start = t
		c.started = true
	}
	ms := float64(t.Sub(c.start)) / float64(time.Millisecond)
	if ms < c.last {
		ms = c.last
	}
	c.last = ms
	return ms
}
