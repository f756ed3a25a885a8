// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders variants.
package config

import "fmt"

// InvadersConfig contains all configuration for a Space Invaders variant.
// Distances are logical playfield units, speeds are units per 60 Hz frame
// and times are milliseconds.
type InvadersConfig struct {
	Field      InvadersField    `yaml:"field"`
	Player     InvadersPlayer   `yaml:"player"`
	Enemies    InvadersEnemies  `yaml:"enemies"`
	Bullets    InvadersBullets  `yaml:"bullets"`
	Scoring    InvadersScoring  `yaml:"scoring"`
	Rules      InvadersRules    `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersField defines the logical playfield.
type InvadersField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersPlayer defines the player ship.
type InvadersPlayer struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	ShootCooldownMs float64 `yaml:"shoot_cooldown_ms"` // 0 = unlimited
	Lives           int     `yaml:"lives"`
}

// InvadersEnemies defines the formation.
type InvadersEnemies struct {
	Rows              int     `yaml:"rows"`
	Cols              int     `yaml:"cols"`
	OriginX           float64 `yaml:"origin_x"`
	OriginY           float64 `yaml:"origin_y"`
	HorizontalSpacing float64 `yaml:"horizontal_spacing"`
	VerticalSpacing   float64 `yaml:"vertical_spacing"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	SpeedIncrement    float64 `yaml:"speed_increment"`
	SpeedCap          float64 `yaml:"speed_cap"` // 0 = uncapped
	ShootIntervalMs   float64 `yaml:"shoot_interval_ms"`
	BulletOffsetX     float64 `yaml:"bullet_offset_x"`
}

// InvadersBullets defines projectile sizes and speeds.
type InvadersBullets struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
}

// InvadersScoring defines point values.
type InvadersScoring struct {
	EnemyReward int `yaml:"enemy_reward"`
}

// InvadersRules defines end-of-game thresholds.
type InvadersRules struct {
	RowMargin          float64 `yaml:"row_margin"`
	DescentFloorMargin float64 `yaml:"descent_floor_margin"` // 0 disables the floor
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over play.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or play milliseconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction  float64 `yaml:"interval_reduction"`  // Fraction of the shoot interval removed at max difficulty
	MinIntervalMs      float64 `yaml:"min_interval_ms"`     // Floor for the shortened interval
	LivesAdjustment    int     `yaml:"lives_adjustment"`    // Lives added on easy, removed on hard
	IntervalAdjustment float64 `yaml:"interval_adjustment"` // Interval fraction added on easy, removed on hard
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
