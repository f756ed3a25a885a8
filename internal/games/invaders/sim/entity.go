package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// EntityID identifies an entity for the lifetime of one playthrough.
// IDs are never reused, so presentation side tables can key on them.
type EntityID uint64

// EntityKind distinguishes the entity collections.
type EntityKind int

const (
	KindEnemy EntityKind = iota
	KindPlayerBullet
	KindEnemyBullet
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	default:
		return "unknown"
	}
}

// Entity is a logical game object. It carries no visual state.
type Entity struct {
	ID   EntityID
	Kind EntityKind
	X, Y float64 // Top-left corner

	// Row is the formation row an enemy was built in; 0 for projectiles.
	Row int
}

// Player is the ship controlled by the input layer.
type Player struct {
	X, Y float64
}

// PlayerRect returns the player's collision box.
func (s *State) PlayerRect() core.RectF {
	return core.NewRectF(s.Player.X, s.Player.Y, s.cfg.PlayerWidth, s.cfg.PlayerHeight)
}

// Rect returns an entity's collision box.
func (s *State) Rect(e Entity) core.RectF {
	if e.Kind == KindEnemy {
		return core.NewRectF(e.X, e.Y, s.cfg.EnemyWidth, s.cfg.EnemyHeight)
	}
	return core.NewRectF(e.X, e.Y, s.cfg.BulletWidth, s.cfg.BulletHeight)
}
