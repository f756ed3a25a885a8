package sim

import (
	"errors"
	"fmt"
)

// ReferenceFrameMs is the 60 Hz frame length that motion constants are tuned
// against. A frame of this length produces a delta of exactly 1.
const ReferenceFrameMs = 16.67

// IntervalFunc returns the enemy shoot interval in effect for the given
// score and elapsed time. base is Config.EnemyShootInterval.
type IntervalFunc func(base float64, score int, elapsedMs float64) float64

// Config holds every tuning constant of a playthrough. Distances are in
// logical playfield units, speeds in units per reference frame, times in
// milliseconds.
type Config struct {
	FieldWidth  float64
	FieldHeight float64

	PlayerStartX        float64
	PlayerStartY        float64
	PlayerWidth         float64
	PlayerHeight        float64
	PlayerSpeed         float64
	PlayerShootCooldown float64 // 0 = unlimited fire rate
	Lives               int

	EnemyRows              int
	EnemyCols              int
	EnemyOriginX           float64
	EnemyOriginY           float64
	EnemyHorizontalSpacing float64
	EnemyVerticalSpacing   float64
	EnemyWidth             float64
	EnemyHeight            float64
	EnemySpeed             float64
	EnemySpeedIncrement    float64
	EnemySpeedCap          float64 // 0 = uncapped
	EnemyShootInterval     float64
	EnemyBulletOffsetX     float64

	BulletWidth      float64
	BulletHeight     float64
	BulletSpeed      float64
	EnemyBulletSpeed float64

	EnemyReward int

	// RowMargin is how far an enemy's bottom edge must pass the player's
	// top edge before the formation counts as having reached the player.
	RowMargin float64

	// DescentFloorMargin ends the game when a descent brings an enemy's
	// bottom edge below FieldHeight-DescentFloorMargin. 0 disables the check.
	DescentFloorMargin float64

	// ShootInterval optionally shortens the enemy interval as play goes on.
	ShootInterval IntervalFunc
}

// DefaultConfig returns the tuning of the later game iteration.
func DefaultConfig() Config {
	return Config{
		FieldWidth:  800,
		FieldHeight: 600,

		PlayerStartX:        380,
		PlayerStartY:        560,
		PlayerWidth:         40,
		PlayerHeight:        20,
		PlayerSpeed:         5,
		PlayerShootCooldown: 250,
		Lives:               3,

		EnemyRows:              5,
		EnemyCols:              10,
		EnemyOriginX:           50,
		EnemyOriginY:           50,
		EnemyHorizontalSpacing: 60,
		EnemyVerticalSpacing:   40,
		EnemyWidth:             30,
		EnemyHeight:            30,
		EnemySpeed:             1,
		EnemySpeedIncrement:    0.1,
		EnemySpeedCap:          5,
		EnemyShootInterval:     800,
		EnemyBulletOffsetX:     12.5,

		BulletWidth:      5,
		BulletHeight:     15,
		BulletSpeed:      5,
		EnemyBulletSpeed: 5,

		EnemyReward:        10,
		RowMargin:          0,
		DescentFloorMargin: 50,
	}
}

// Validate reports the first setting that would make the simulation
// meaningless.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("field width", c.FieldWidth)
	positive("field height", c.FieldHeight)
	positive("player width", c.PlayerWidth)
	positive("player height", c.PlayerHeight)
	positive("player speed", c.PlayerSpeed)
	positive("enemy width", c.EnemyWidth)
	positive("enemy height", c.EnemyHeight)
	positive("enemy speed", c.EnemySpeed)
	positive("enemy shoot interval", c.EnemyShootInterval)
	positive("bullet width", c.BulletWidth)
	positive("bullet height", c.BulletHeight)
	positive("bullet speed", c.BulletSpeed)
	positive("enemy bullet speed", c.EnemyBulletSpeed)
	nonNegative("player shoot cooldown", c.PlayerShootCooldown)
	nonNegative("enemy speed increment", c.EnemySpeedIncrement)
	nonNegative("enemy speed cap", c.EnemySpeedCap)
	nonNegative("descent floor margin", c.DescentFloorMargin)

	if c.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Lives))
	}
	if c.EnemyRows < 1 || c.EnemyCols < 1 {
		errs = append(errs, fmt.Errorf("formation must have at least one enemy, got %dx%d", c.EnemyRows, c.EnemyCols))
	}
	if c.EnemyReward < 0 {
		errs = append(errs, fmt.Errorf("enemy reward must not be negative, got %d", c.EnemyReward))
	}
	if c.PlayerWidth > c.FieldWidth {
		errs = append(errs, errors.New("player is wider than the field"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("sim: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
