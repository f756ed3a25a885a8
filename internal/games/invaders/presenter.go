package invaders

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlayerWingChar  = '▄'
	BulletChar      = '│'
	EnemyBulletChar = '¦'
	FloorChar       = '·'
)

// Enemy glyphs and colours by formation row (cycling through)
var (
	EnemyGlyphs = []rune{'▼', '◆', '◆', '■', '■'}
	EnemyColors = []core.Color{core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorCyan, core.ColorBrightGreen, core.ColorGreen}
)

// Minimum terminal size the playfield is drawn at
const (
	MinScreenW = 40
	MinScreenH = 15
)

// sprite is the visual half of an entity.
type sprite struct {
	glyph rune
	color core.Color
}

// Presenter owns the visuals of live entities. It is fed by simulation
// events and never writes back into the simulation.
type Presenter struct {
	sprites map[sim.EntityID]sprite
}

// NewPresenter creates an empty side table.
func NewPresenter() *Presenter {
	return &Presenter{sprites: make(map[sim.EntityID]sprite)}
}

// Len returns the number of visuals currently held.
func (p *Presenter) Len() int {
	return len(p.sprites)
}

// Has reports whether a visual exists for id.
func (p *Presenter) Has(id sim.EntityID) bool {
	_, ok := p.sprites[id]
	return ok
}

// Apply creates visuals for Spawned events and releases them on Despawned.
// It returns how many of each were applied.
func (p *Presenter) Apply(events []sim.Event) (spawned, despawned int) {
	for _, ev := range events {
		switch ev.Type {
		case sim.EventSpawned:
			p.sprites[ev.ID] = spriteFor(ev)
			spawned++
		case sim.EventDespawned:
			delete(p.sprites, ev.ID)
			despawned++
		}
	}
	return spawned, despawned
}

func spriteFor(ev sim.Event) sprite {
	switch ev.Kind {
	case sim.KindEnemy:
		i := ev.Row % len(EnemyGlyphs)
		return sprite{glyph: EnemyGlyphs[i], color: EnemyColors[i]}
	case sim.KindPlayerBullet:
		return sprite{glyph: BulletChar, color: core.ColorBrightYellow}
	default:
		return sprite{glyph: EnemyBulletChar, color: core.ColorBrightRed}
	}
}

// viewport maps logical playfield coordinates onto screen cells below the
// HUD row.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(dst *core.Screen, cfg sim.Config) viewport {
	top := 1
	h := dst.Height() - top
	return viewport{
		sx:  float64(dst.Width()) / cfg.FieldWidth,
		sy:  float64(h) / cfg.FieldHeight,
		top: top,
		w:   dst.Width(),
		h:   h,
	}
}

// cell returns the screen cell for a logical position, kept inside the
// playfield rows.
func (v viewport) cell(x, y float64) (int, int) {
	cx := core.Clamp(int(math.Floor(x*v.sx)), 0, v.w-1)
	cy := core.Clamp(int(math.Floor(y*v.sy)), 0, v.h-1)
	return cx, v.top + cy
}

// span returns how many cells a logical width covers, at least one.
func (v viewport) span(w float64) int {
	return max(1, int(math.Round(w*v.sx)))
}

// Render draws the playfield, HUD and any overlay.
func (p *Presenter) Render(dst *core.Screen, st *sim.State) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	cfg := st.Config()
	vp := newViewport(dst, cfg)

	p.renderHUD(dst, st)
	p.renderFloor(dst, vp, cfg)
	p.renderEntities(dst, vp, cfg.EnemyWidth, st.Enemies)
	p.renderEntities(dst, vp, cfg.BulletWidth, st.Bullets)
	p.renderEntities(dst, vp, cfg.BulletWidth, st.EnemyBullets)
	p.renderPlayer(dst, vp, st, cfg)
	p.renderOverlay(dst, st)
}

// renderHUD draws score, lives and elapsed time.
func (p *Presenter) renderHUD(dst *core.Screen, st *sim.State) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)

	livesText := fmt.Sprintf("Lives: %d", st.Lives)
	dst.DrawTextColored((dst.Width()-len(livesText))/2, 0, livesText, core.ColorBrightRed)

	timeText := fmt.Sprintf("Time: %ss", st.SecondsElapsed())
	dst.DrawTextColored(dst.Width()-len(timeText)-1, 0, timeText, core.ColorGray)
}

// renderFloor marks the row the formation must not descend past.
func (p *Presenter) renderFloor(dst *core.Screen, vp viewport, cfg sim.Config) {
	if cfg.DescentFloorMargin <= 0 {
		return
	}
	_, y := vp.cell(0, cfg.FieldHeight-cfg.DescentFloorMargin)
	dst.DrawHLine(0, y, vp.w, FloorChar)
}

// renderEntities draws a collection using the visuals in the side table.
// Entities without a visual are skipped.
func (p *Presenter) renderEntities(dst *core.Screen, vp viewport, width float64, list []sim.Entity) {
	for _, e := range list {
		spr, ok := p.sprites[e.ID]
		if !ok {
			continue
		}
		x, y := vp.cell(e.X, e.Y)
		n := 1
		if e.Kind == sim.KindEnemy {
			n = vp.span(width)
		}
		for dx := range n {
			dst.SetColored(x+dx, y, spr.glyph, spr.color)
		}
	}
}

// renderPlayer draws the ship as a solid hull with wings.
func (p *Presenter) renderPlayer(dst *core.Screen, vp viewport, st *sim.State, cfg sim.Config) {
	x, y := vp.cell(st.Player.X, st.Player.Y)
	n := vp.span(cfg.PlayerWidth)
	for dx := range n {
		glyph := PlayerChar
		if n > 2 && (dx == 0 || dx == n-1) {
			glyph = PlayerWingChar
		}
		dst.SetColored(x+dx, y, glyph, core.ColorBrightGreen)
	}
}

// renderOverlay draws game state messages.
func (p *Presenter) renderOverlay(dst *core.Screen, st *sim.State) {
	switch {
	case st.Faulted():
		msg := truncate(st.Fault.Error(), dst.Width()-8)
		drawCenteredBox(dst, "SIMULATION HALTED", msg, "Press R to restart")

	case st.Phase() == sim.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to continue", "Press R to restart")

	case st.Phase() == sim.PhaseGameOver:
		summary := fmt.Sprintf("Score: %d  Time: %ss", st.FinalScore, st.FinalSeconds())
		drawCenteredBox(dst, "GAME OVER", summary, "Press R to restart")

	case st.Phase() == sim.PhaseVictory:
		summary := fmt.Sprintf("Score: %d  Time: %ss", st.FinalScore, st.FinalSeconds())
		drawCenteredBox(dst, "YOU WIN!", summary, "Press R to play again")
	}
}

// drawCenteredBox draws a centered message box with one line per entry.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l)
	}
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:max(limit, 0)])
}
