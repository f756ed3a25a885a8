package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		id   string
		want InvadersConfig
	}{
		{InvadersID, DefaultInvadersConfig()},
		{InvadersClassicID, DefaultInvadersClassicConfig()},
	}

	for _, tt := range tests {
		var got InvadersConfig
		if err := decode(GetDefaultYAML(tt.id), &got); err != nil {
			t.Fatalf("%s: decode embedded: %v", tt.id, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: embedded YAML differs from hard-coded defaults\n got: %+v\nwant: %+v", tt.id, got, tt.want)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("%s: defaults invalid: %v", tt.id, err)
		}
	}
}

func TestLoadInvadersFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadInvaders(InvadersClassicID, "")
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.Bullets.PlayerSpeed != 7 {
		t.Errorf("classic player bullet speed = %v, want 7", cfg.Bullets.PlayerSpeed)
	}
	if cfg.Enemies.SpeedCap != 0 {
		t.Errorf("classic speed cap = %v, want 0", cfg.Enemies.SpeedCap)
	}
}

func TestLoadInvadersUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "invaders.yaml"), []byte("player:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(InvadersID, "")
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Player.Lives)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "enemies:\n  rows: 2\n  cols: 3\n  shoot_interval_ms: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(InvadersID, path)
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.Enemies.Rows != 2 || cfg.Enemies.Cols != 3 {
		t.Errorf("formation = %dx%d, want 2x3", cfg.Enemies.Rows, cfg.Enemies.Cols)
	}
	if cfg.Enemies.ShootIntervalMs != 500 {
		t.Errorf("shoot interval = %v, want 500", cfg.Enemies.ShootIntervalMs)
	}
	// Untouched keys keep their defaults.
	if cfg.Player.Speed != 5 {
		t.Errorf("player speed = %v, want 5", cfg.Player.Speed)
	}
}

func TestLoadInvadersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "enemies:\n  colour: red\n", "parse"},
		{"bad syntax", "player: [\n", "parse"},
		{"invalid value", "player:\n  lives: 0\n", "lives"},
		{"bad progression", "difficulty:\n  progression:\n    type: moon\n", "progression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadInvaders(InvadersID, path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadInvaders(InvadersID, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantLives   int
		wantInteval float64
		wantEnabled bool
	}{
		{"", 3, 800, false},
		{DifficultyEasy, 5, 1000, true},
		{DifficultyNormal, 3, 800, true},
		{DifficultyHard, 1, 600, true},
		{DifficultyFixed, 3, 800, false},
	}

	for _, tt := range tests {
		cfg := DefaultInvadersConfig()
		ApplyInvadersPreset(&cfg, tt.preset)
		if cfg.Player.Lives != tt.wantLives {
			t.Errorf("%q: lives = %d, want %d", tt.preset, cfg.Player.Lives, tt.wantLives)
		}
		if cfg.Enemies.ShootIntervalMs != tt.wantInteval {
			t.Errorf("%q: interval = %v, want %v", tt.preset, cfg.Enemies.ShootIntervalMs, tt.wantInteval)
		}
		if cfg.Difficulty.Enabled != tt.wantEnabled {
			t.Errorf("%q: enabled = %v, want %v", tt.preset, cfg.Difficulty.Enabled, tt.wantEnabled)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyShootInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{IntervalReduction: 0.5, MinIntervalMs: 450},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 1000},
		{50, 750},
		{100, 500},
		{1000, 500},
	}
	for _, tt := range tests {
		if got := dm.ShootInterval(1000, tt.score, 0); got != tt.want {
			t.Errorf("ShootInterval(score=%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	if got := dm.ShootInterval(800, 100, 0); got != 450 {
		t.Errorf("floor not applied: got %v, want 450", got)
	}

	disabled := NewDifficultyManager(DifficultyConfig{
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{IntervalReduction: 0.5},
	})
	if got := disabled.ShootInterval(1000, 100, 0); got != 1000 {
		t.Errorf("disabled manager changed interval: %v", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60000},
	})
	if got := dm.Level(0, 30000); got != 0.5 {
		t.Errorf("Level at half time = %v, want 0.5", got)
	}

	clamped := NewDifficultyManager(DifficultyConfig{InitialLevel: 2})
	if got := clamped.Level(0, 0); got != 1 {
		t.Errorf("initial level not clamped: %v", got)
	}
}

func TestToSim(t *testing.T) {
	cfg := DefaultInvadersConfig()
	sc := cfg.ToSim()
	if sc.EnemyShootInterval != 800 || sc.PlayerShootCooldown != 250 || sc.EnemySpeedCap != 5 {
		t.Errorf("unexpected sim config: %+v", sc)
	}
	if sc.ShootInterval != nil {
		t.Error("disabled difficulty should not install a shoot interval func")
	}

	ApplyInvadersPreset(&cfg, DifficultyHard)
	sc = cfg.ToSim()
	if sc.ShootInterval == nil {
		t.Fatal("hard preset should install a shoot interval func")
	}
	if got := sc.ShootInterval(sc.EnemyShootInterval, 0, 0); got >= sc.EnemyShootInterval {
		t.Errorf("hard preset interval %v not shorter than base %v", got, sc.EnemyShootInterval)
	}
}
