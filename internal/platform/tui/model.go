package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for faults and storage errors.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPalette sets the colour palette used by View.
func WithPalette(p *Palette) ModelOption {
	return func(m *Model) {
		if p != nil {
			m.palette = p
		}
	}
}

// WithHoldWindow overrides how long movement keys stay held.
func WithHoldWindow(d time.Duration) ModelOption {
	return func(m *Model) { m.holds = NewHoldTracker(d) }
}

// WithinSession makes Back return to the session menu instead of quitting.
func WithinSession() ModelOption {
	return func(m *Model) { m.inSession = true }
}

// Model is the Bubble Tea model for running a game. Bubble Tea's tick loop
// is the frame scheduler: every tick becomes one Step with a monotonic
// millisecond timestamp.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	fixedSeed  bool
	keyMapper  *KeyMapper
	holds      *HoldTracker
	clock      *FrameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	palette    *Palette
	fault      error // Set when the game faulted; ticking stops
	inSession  bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		fixedSeed:  fixed,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(DefaultHoldWindow),
		clock:      &FrameClock{},
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
		palette:    defaultPalette,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, at time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	ended := m.gameState.GameOver || m.fault != nil
	switch {
	case action == core.ActionBack:
		if ended || m.gameState.Paused {
			if m.inSession {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}

	case action == core.ActionRestart:
		if ended || m.gameState.Paused {
			return m.restart()
		}

	case IsMovement(action):
		m.holds.Press(action, at)
		m.inputFrame.Set(action)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// restart starts a new playthrough. Ticking resumes if a fault had stopped it.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.holds.Reset()
	m.inputFrame.Clear()

	if m.fault != nil {
		m.fault = nil
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is logical,
// so the game keeps running and is only redrawn at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.fault != nil {
		return m, nil
	}

	now := m.clock.Now(t)
	m.holds.Apply(&m.inputFrame, t)

	result := m.game.Step(now, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !result.OK() {
		m.fault = result.Fault
		m.logger.Error("simulation halted", "game", m.game.ID(), "at_ms", now, "err", result.Fault)
		return m, nil
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run and its score. Failures are logged and
// play continues.
func (m Model) saveRun() {
	st := m.gameState
	outcome := storage.OutcomeGameOver
	if st.Victory {
		outcome = storage.OutcomeVictory
	}
	m.logger.Info("run finished", "game", m.game.ID(), "outcome", outcome, "score", st.Score, "time_ms", int64(st.TimeMs))

	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID:  m.game.ID(),
		Score:   st.Score,
		TimeMs:  int64(st.TimeMs),
		Outcome: outcome,
		Lives:   st.Lives,
		Seed:    m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Warn("could not save score", "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return m.palette.Render(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Fault returns the error that halted the game, if any.
func (m Model) Fault() error {
	return m.fault
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
