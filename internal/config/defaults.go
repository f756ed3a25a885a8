package config

import (
	_ "embed"
)

// Variant IDs with an embedded default configuration.
const (
	InvadersID        = "invaders"
	InvadersClassicID = "invaders_classic"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/invaders_classic.yaml
var defaultInvadersClassicYAML []byte

// DefaultInvadersConfig returns the default configuration of the arcade
// variant: capped formation speed, a player fire cooldown and a descent floor.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: InvadersField{
			Width:  800,
			Height: 600,
		},
		Player: InvadersPlayer{
			StartX:          380,
			StartY:          560,
			Width:           40,
			Height:          20,
			Speed:           5,
			ShootCooldownMs: 250,
			Lives:           3,
		},
		Enemies: InvadersEnemies{
			Rows:              5,
			Cols:              10,
			OriginX:           50,
			OriginY:           50,
			HorizontalSpacing: 60,
			VerticalSpacing:   40,
			Width:             30,
			Height:            30,
			Speed:             1,
			SpeedIncrement:    0.1,
			SpeedCap:          5,
			ShootIntervalMs:   800,
			BulletOffsetX:     12.5,
		},
		Bullets: InvadersBullets{
			Width:       5,
			Height:      15,
			PlayerSpeed: 5,
			EnemySpeed:  5,
		},
		Scoring: InvadersScoring{
			EnemyReward: 10,
		},
		Rules: InvadersRules{
			RowMargin:          0,
			DescentFloorMargin: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				IntervalReduction:  0.5,
				MinIntervalMs:      250,
				LivesAdjustment:    2,
				IntervalAdjustment: 0.25,
			},
		},
	}
}

// DefaultInvadersClassicConfig returns the default configuration of the
// classic variant: uncapped speed, unlimited player fire, no descent floor.
func DefaultInvadersClassicConfig() InvadersConfig {
	cfg := DefaultInvadersConfig()
	cfg.Player.ShootCooldownMs = 0
	cfg.Enemies.SpeedCap = 0
	cfg.Enemies.ShootIntervalMs = 1000
	cfg.Enemies.BulletOffsetX = 15
	cfg.Bullets.PlayerSpeed = 7
	cfg.Rules.DescentFloorMargin = 0
	cfg.Difficulty.Progression = ProgressionConfig{Type: "time", MaxAt: 120000}
	return cfg
}

// DefaultConfigFor returns the hard-coded defaults for a variant.
func DefaultConfigFor(gameID string) InvadersConfig {
	if gameID == InvadersClassicID {
		return DefaultInvadersClassicConfig()
	}
	return DefaultInvadersConfig()
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case InvadersID:
		return defaultInvadersYAML
	case InvadersClassicID:
		return defaultInvadersClassicYAML
	default:
		return nil
	}
}
