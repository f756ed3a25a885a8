package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Lives    int     // Remaining lives
	TimeMs   float64 // Elapsed simulation time in milliseconds
	GameOver bool    // Whether the game has ended (lost or won)
	Victory  bool    // Whether the game ended in a win
	Paused   bool    // Whether the game is paused
	Faulted  bool    // Whether the simulation stopped on a fault
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State     GameState
	Spawned   int   // Entities created this frame
	Despawned int   // Entities destroyed this frame
	Fault     error // Non-nil when the step faulted; the host should halt
}

// OK reports whether the step completed without a fault.
func (r StepResult) OK() bool {
	return r.Fault == nil
}
