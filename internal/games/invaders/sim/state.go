package sim

import (
	"fmt"
	"math/rand"
)

// Random supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a Random seeded deterministically.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// Outcome is the terminal status of a playthrough.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeGameOver
	OutcomeVictory
)

// String returns the name used when persisting runs.
func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "gameover"
	case OutcomeVictory:
		return "victory"
	default:
		return "playing"
	}
}

// Phase is the externally visible state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	default:
		return "playing"
	}
}

// State is the complete mutable state of one playthrough. Only Step mutates
// it; readers must not hold on to slices across steps.
type State struct {
	Player       Player
	Enemies      []Entity // Row-major insertion order
	Bullets      []Entity
	EnemyBullets []Entity

	Score   int
	Lives   int
	Time    float64 // Accumulated unpaused play time in ms
	Paused  bool
	Outcome Outcome

	EnemyDirection float64 // +1 right, -1 left
	EnemySpeed     float64
	LastEnemyShot  float64
	LastPlayerShot float64

	FinalScore int
	FinalTime  float64

	// Fault is set when a step could not complete. The state is frozen
	// from then on.
	Fault error

	cfg     Config
	rng     Random
	nextID  EntityID
	events  []Event
	last    float64
	started bool
	fired   bool
}

// NewState builds a fresh playthrough. The config is not validated here;
// callers load it through Config.Validate first.
func NewState(cfg Config, rng Random) *State {
	if rng == nil {
		rng = NewRandom(1)
	}
	s := &State{
		Player:         Player{X: cfg.PlayerStartX, Y: cfg.PlayerStartY},
		Lives:          cfg.Lives,
		EnemyDirection: 1,
		EnemySpeed:     cfg.EnemySpeed,
		cfg:            cfg,
		rng:            rng,
	}

	s.Enemies = make([]Entity, 0, cfg.EnemyRows*cfg.EnemyCols)
	for row := 0; row < cfg.EnemyRows; row++ {
		for col := 0; col < cfg.EnemyCols; col++ {
			s.Enemies = append(s.Enemies, s.spawn(Entity{
				Kind: KindEnemy,
				X:    cfg.EnemyOriginX + float64(col)*cfg.EnemyHorizontalSpacing,
				Y:    cfg.EnemyOriginY + float64(row)*cfg.EnemyVerticalSpacing,
				Row:  row,
			}))
		}
	}
	return s
}

// Config returns the tuning the state was built with.
func (s *State) Config() Config {
	return s.cfg
}

// Phase reports the current state machine position.
func (s *State) Phase() Phase {
	switch {
	case s.Outcome == OutcomeGameOver:
		return PhaseGameOver
	case s.Outcome == OutcomeVictory:
		return PhaseVictory
	case s.Paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Terminal reports whether the playthrough has ended.
func (s *State) Terminal() bool {
	return s.Outcome != OutcomePlaying
}

// Faulted reports whether a step failed and froze the state.
func (s *State) Faulted() bool {
	return s.Fault != nil
}

// SecondsElapsed formats the play time for the HUD.
func (s *State) SecondsElapsed() string {
	return formatSeconds(s.Time)
}

// FinalSeconds formats the play time recorded at the end of the game.
func (s *State) FinalSeconds() string {
	return formatSeconds(s.FinalTime)
}

func formatSeconds(ms float64) string {
	return fmt.Sprintf("%.1f", ms/1000)
}

// Live returns the number of entities currently in the state, player excluded.
func (s *State) Live() int {
	return len(s.Enemies) + len(s.Bullets) + len(s.EnemyBullets)
}

// Drain hands pending lifecycle events to the caller and clears the queue.
func (s *State) Drain() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// spawn allocates an ID and queues a Spawned event. The caller appends the
// returned entity to the right collection.
func (s *State) spawn(e Entity) Entity {
	s.nextID++
	e.ID = s.nextID
	s.events = append(s.events, Event{Type: EventSpawned, ID: e.ID, Kind: e.Kind, X: e.X, Y: e.Y, Row: e.Row})
	return e
}

func (s *State) despawned(e Entity, reason DespawnReason) {
	s.events = append(s.events, Event{
		Type:   EventDespawned,
		ID:     e.ID,
		Kind:   e.Kind,
		X:      e.X,
		Y:      e.Y,
		Row:    e.Row,
		Reason: reason,
	})
}

// removeAt deletes index i from list preserving order and queues the
// Despawned event.
func (s *State) removeAt(list []Entity, i int, reason DespawnReason) []Entity {
	s.despawned(list[i], reason)
	return append(list[:i], list[i+1:]...)
}

// finish enters a terminal outcome once and freezes the final values.
func (s *State) finish(o Outcome) {
	if s.Outcome != OutcomePlaying {
		return
	}
	s.Outcome = o
	s.FinalScore = s.Score
	s.FinalTime = s.Time
}
