package sim

import (
	"fmt"
	"math"
)

// Input is the explicit input context for one frame. Left and Right are
// held state, Fire and TogglePause are "just pressed" this frame.
type Input struct {
	Left        bool
	Right       bool
	Fire        bool
	TogglePause bool
}

// Status classifies a step result.
type Status int

const (
	StatusOK Status = iota
	StatusFault
)

// Result is the outcome of a single Step call.
type Result struct {
	Status Status
	Fault  error
}

// OK reports whether the step completed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Step advances the simulation to timestamp now (milliseconds, monotonic).
// The first call only records the timestamp, which also starts the enemy
// fire interval.
func (s *State) Step(now float64, in Input) (res Result) {
	if s.Fault != nil {
		return Result{Status: StatusFault, Fault: s.Fault}
	}
	if math.IsNaN(now) || math.IsInf(now, 0) {
		return s.fail(fmt.Errorf("sim: non-finite timestamp %v", now))
	}
	if !s.started {
		s.started = true
		s.last = now
		s.LastEnemyShot = now
	}
	if now < s.last {
		return s.fail(fmt.Errorf("sim: timestamp went backwards: %v after %v", now, s.last))
	}

	delta := (now - s.last) / ReferenceFrameMs
	s.last = now

	if in.TogglePause && s.Outcome == OutcomePlaying {
		s.Paused = !s.Paused
	}
	if s.Paused || s.Terminal() {
		return Result{}
	}

	defer func() {
		if r := recover(); r != nil {
			res = s.fail(fmt.Errorf("sim: step aborted: %v", r))
		}
	}()

	s.Time += delta * ReferenceFrameMs

	if in.Fire {
		s.firePlayer(now)
	}

	s.movePlayer(delta, in)
	s.moveBullets(delta)
	s.moveFormation(delta)

	if !s.Terminal() {
		s.resolveCollisions()
	}
	if !s.Terminal() {
		s.fireEnemy(now)
	}
	return Result{}
}

func (s *State) fail(err error) Result {
	s.Fault = err
	return Result{Status: StatusFault, Fault: err}
}
