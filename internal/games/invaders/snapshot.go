package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Score          int
	Lives          int
	TimeMs         float64
	Paused         bool
	Outcome        int
	EnemyDirection float64
	EnemySpeed     float64
	LastEnemyShot  float64
	LastPlayerShot float64
	PlayerX        float64
	PlayerY        float64

	// Entity positions (each entity is 3 floats: ID, X, Y)
	EnemyData       []float64
	BulletData      []float64
	EnemyBulletData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	return Snapshot{
		Score:          st.Score,
		Lives:          st.Lives,
		TimeMs:         st.Time,
		Paused:         st.Paused,
		Outcome:        int(st.Outcome),
		EnemyDirection: st.EnemyDirection,
		EnemySpeed:     st.EnemySpeed,
		LastEnemyShot:  st.LastEnemyShot,
		LastPlayerShot: st.LastPlayerShot,
		PlayerX:        st.Player.X,
		PlayerY:        st.Player.Y,

		EnemyData:       flatten(st.Enemies),
		BulletData:      flatten(st.Bullets),
		EnemyBulletData: flatten(st.EnemyBullets),
	}
}

func flatten(list []sim.Entity) []float64 {
	out := make([]float64, 0, len(list)*3)
	for _, e := range list {
		out = append(out, float64(e.ID), e.X, e.Y)
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range []float64{
		snap.TimeMs, snap.EnemyDirection, snap.EnemySpeed,
		snap.LastEnemyShot, snap.LastPlayerShot, snap.PlayerX, snap.PlayerY,
	} {
		h = h*31 + math.Float64bits(v)
	}

	for _, data := range [][]float64{snap.EnemyData, snap.BulletData, snap.EnemyBulletData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	return h
}
