// Package invaders adapts the Space Invaders simulation to the platform:
// it loads configuration, maps platform input to simulation input and keeps
// the presentation side table in sync with simulation events.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Variant selects the tuning a Game is built with.
type Variant int

const (
	VariantArcade  Variant = iota // Capped speed, fire cooldown, descent floor
	VariantClassic                // Uncapped speed, unlimited fire
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game on top of sim.State.
type Game struct {
	variant Variant
	preset  *config.DifficultyPreset // Overrides the CLI preset when set

	cfg       config.InvadersConfig
	configErr error

	state     *sim.State
	presenter *Presenter
}

// New creates a game with the arcade tuning.
func New() *Game {
	return &Game{variant: VariantArcade}
}

// NewClassic creates a game with the classic tuning.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return config.InvadersClassicID
	}
	return config.InvadersID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Space Invaders (Classic)"
	}
	return "Space Invaders"
}

// Reset starts a fresh playthrough. A config that fails to load falls back
// to the variant's defaults; the error stays available via ConfigErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(g.ID(), configPath)
	if err != nil {
		cfg = config.DefaultConfigFor(g.ID())
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	config.ApplyInvadersPreset(&cfg, preset)
	if verr := cfg.Validate(); verr != nil {
		err = verr
		cfg = config.DefaultConfigFor(g.ID())
	}
	g.cfg = cfg
	g.configErr = err

	g.state = sim.NewState(cfg.ToSim(), sim.NewRandom(runtime.Seed))
	g.presenter = NewPresenter()
	g.presenter.Apply(g.state.Drain())
}

// SetPreset selects a difficulty preset for this instance only. It takes
// effect on the next Reset.
func (g *Game) SetPreset(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.preset = &p
	return nil
}

// ConfigErr returns the error hit while loading configuration on the last
// Reset, if any.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Config returns the configuration in effect.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Sim exposes the simulation state for inspection.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Presenter exposes the presentation side table.
func (g *Game) Presenter() *Presenter {
	return g.presenter
}

// Step advances the simulation to timestamp now. Restarting is the host's
// job through Reset.
func (g *Game) Step(now float64, in core.InputFrame) core.StepResult {
	res := g.state.Step(now, toSimInput(in))
	spawned, despawned := g.presenter.Apply(g.state.Drain())

	return core.StepResult{
		State:     g.State(),
		Spawned:   spawned,
		Despawned: despawned,
		Fault:     res.Fault,
	}
}

// toSimInput maps platform actions onto the simulation's input context.
// Movement counts when held or pressed this frame.
func toSimInput(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:        in.IsHeld(core.ActionLeft) || in.Has(core.ActionLeft),
		Right:       in.IsHeld(core.ActionRight) || in.Has(core.ActionRight),
		Fire:        in.Has(core.ActionFire),
		TogglePause: in.Has(core.ActionPause),
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.presenter.Render(dst, g.state)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.state
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		TimeMs:   st.Time,
		GameOver: st.Terminal(),
		Victory:  st.Outcome == sim.OutcomeVictory,
		Paused:   st.Paused,
		Faulted:  st.Faulted(),
	}
}

// Register the games with the registry
func init() {
	registry.Register(config.InvadersID, func() registry.Game {
		return New()
	})
	registry.Register(config.InvadersClassicID, func() registry.Game {
		return NewClassic()
	})
}
