package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded defaults differ from DefaultPlatformerConfig():\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	write := func(path, body string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write(filepath.Join(work, "configs", "platformer.yaml"), "gameplay:\n  lives: 7\n")
	cfg, _ := LoadPlatformer("")
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("local config lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Physics.Gravity != 2 {
		t.Errorf("missing fields should keep defaults, gravity = %v", cfg.Physics.Gravity)
	}

	write(filepath.Join(home, ConfigDirName, "configs", "platformer.yaml"), "gameplay:\n  lives: 9\n")
	cfg, _ = LoadPlatformer("")
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("user config lives = %d, expected 9", cfg.Gameplay.Lives)
	}

	custom := filepath.Join(work, "custom.yaml")
	write(custom, "enemies:\n  speed: 1.5\n")
	cfg, err := LoadPlatformer(custom)
	if err != nil {
		t.Fatalf("LoadPlatformer(custom) error = %v", err)
	}
	if cfg.Enemies.Speed != 1.5 || cfg.Gameplay.Lives != 3 {
		t.Errorf("custom config = %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := LoadPlatformer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("expected error for invalid custom config")
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		speed   float64
		enabled bool
		initial float64
	}{
		{DifficultyEasy, 5, 0.3, true, 0.0},
		{DifficultyNormal, 3, 0.4, true, 0.3},
		{DifficultyHard, 2, 0.5, true, 0.7},
		{DifficultyFixed, 3, 0.4, false, 0.0},
	}

	for _, tc := range tests {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, tc.preset)
		if cfg.Gameplay.Lives != tc.lives {
			t.Errorf("%s: lives = %d, expected %d", tc.preset, cfg.Gameplay.Lives, tc.lives)
		}
		if diff := cfg.Enemies.Speed - tc.speed; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: enemy speed = %v, expected %v", tc.preset, cfg.Enemies.Speed, tc.speed)
		}
		if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.initial {
			t.Errorf("%s: difficulty = %+v", tc.preset, cfg.Difficulty)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultPlatformerConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level(0, 0) = %v, expected 0", got)
	}
	if got := d.EnemySpeed(0.4, 0, 3); got != 0.8 {
		t.Errorf("EnemySpeed at max = %v, expected 0.8", got)
	}
	if got := d.Level(0, 10); got != 1 {
		t.Errorf("Level is clamped, got %v", got)
	}

	d.SetInitialLevel(0.5)
	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level with initial 0.5 = %v", got)
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(0, 3); got != 0.5 {
		t.Errorf("disabled manager should stay at initial level, got %v", got)
	}

	score := cfg
	score.Progression = ProgressionConfig{Type: "score", MaxAt: 1000}
	ds := NewDifficultyManager(score)
	if got := ds.Level(500, 0); got != 0.5 {
		t.Errorf("score progression Level(500) = %v, expected 0.5", got)
	}
}
