package config

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// ToSim converts the YAML configuration into simulation tuning. When
// difficulty progression is enabled the enemy shoot interval is driven by
// a DifficultyManager.
func (c InvadersConfig) ToSim() sim.Config {
	out := sim.Config{
		FieldWidth:  c.Field.Width,
		FieldHeight: c.Field.Height,

		PlayerStartX:        c.Player.StartX,
		PlayerStartY:        c.Player.StartY,
		PlayerWidth:         c.Player.Width,
		PlayerHeight:        c.Player.Height,
		PlayerSpeed:         c.Player.Speed,
		PlayerShootCooldown: c.Player.ShootCooldownMs,
		Lives:               c.Player.Lives,

		EnemyRows:              c.Enemies.Rows,
		EnemyCols:              c.Enemies.Cols,
		EnemyOriginX:           c.Enemies.OriginX,
		EnemyOriginY:           c.Enemies.OriginY,
		EnemyHorizontalSpacing: c.Enemies.HorizontalSpacing,
		EnemyVerticalSpacing:   c.Enemies.VerticalSpacing,
		EnemyWidth:             c.Enemies.Width,
		EnemyHeight:            c.Enemies.Height,
		EnemySpeed:             c.Enemies.Speed,
		EnemySpeedIncrement:    c.Enemies.SpeedIncrement,
		EnemySpeedCap:          c.Enemies.SpeedCap,
		EnemyShootInterval:     c.Enemies.ShootIntervalMs,
		EnemyBulletOffsetX:     c.Enemies.BulletOffsetX,

		BulletWidth:      c.Bullets.Width,
		BulletHeight:     c.Bullets.Height,
		BulletSpeed:      c.Bullets.PlayerSpeed,
		EnemyBulletSpeed: c.Bullets.EnemySpeed,

		EnemyReward:        c.Scoring.EnemyReward,
		RowMargin:          c.Rules.RowMargin,
		DescentFloorMargin: c.Rules.DescentFloorMargin,
	}

	dm := NewDifficultyManager(c.Difficulty)
	if dm.IsEnabled() {
		out.ShootInterval = dm.ShootInterval
	}
	return out
}

// Validate checks the configuration for values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	if err := c.ToSim().Validate(); err != nil {
		return err
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	if r := c.Difficulty.Scaling.IntervalReduction; r < 0 || r >= 1 {
		return fmt.Errorf("config: interval_reduction must be in [0, 1), got %v", r)
	}
	return nil
}
