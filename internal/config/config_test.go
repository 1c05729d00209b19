package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatch(t *testing.T) {
	cfg := DefaultBomberConfig()
	var embedded BomberConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &embedded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if embedded != cfg {
		t.Errorf("embedded defaults = %+v, expected %+v", embedded, cfg)
	}
}

func TestLoadBomberCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bomber.yaml")
	data := []byte("grid:\n  width: 15\n  height: 11\nprogression:\n  max_level: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBomber(path)
	if err != nil {
		t.Fatalf("LoadBomber() error = %v", err)
	}
	if cfg.Grid.Width != 15 || cfg.Grid.Height != 11 || cfg.Progression.MaxLevel != 3 {
		t.Errorf("LoadBomber() = %+v, overrides not applied", cfg.Grid)
	}
	if cfg.Timing.BombFuse != 180 {
		t.Errorf("Timing.BombFuse = %d, expected default 180", cfg.Timing.BombFuse)
	}
}

func TestLoadBomberErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	small := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(bad, []byte("grid: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(small, []byte("grid:\n  width: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", bad},
		{"invalid", small},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBomber(tt.path); err == nil {
				t.Error("LoadBomber() error = nil, expected an error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BomberConfig)
		ok     bool
	}{
		{"defaults", func(*BomberConfig) {}, true},
		{"tiny grid", func(c *BomberConfig) { c.Grid.Height = 4 }, false},
		{"no fuse", func(c *BomberConfig) { c.Timing.BombFuse = 0 }, false},
		{"level order", func(c *BomberConfig) { c.Progression.StartLevel = 5; c.Progression.MaxLevel = 2 }, false},
		{"probability", func(c *BomberConfig) { c.Map.PowerUpProbability = 1.5 }, false},
		{"map overflow", func(c *BomberConfig) { c.Map.BreakableProbability = 0.8; c.Map.WaterProbability = 0.3 }, false},
		{"smart override", func(c *BomberConfig) { c.Difficulty.SmartProbability = 1.5 }, false},
		{"negative time scale", func(c *BomberConfig) { c.Difficulty.TimeScale = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBomberConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok = %v", err, tt.ok)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = %v, %v, expected %v", tt.in, got, err, tt.want)
		}
	}
}

func TestDifficultyManager(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		level       int
		wantEnemies int
		wantTime    int
		wantSmart   float64
	}{
		{DifficultyNormal, 1, 2, 3600, 0.5},
		{DifficultyNormal, 3, 6, 7200, 0.5},
		{DifficultyEasy, 1, 1, 5400, 0.3},
		{DifficultyEasy, 2, 3, 8100, 0.3},
		{DifficultyHard, 2, 5, 4050, 0.7},
		{DifficultyFixed, 5, 2, 3600, 0.5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBomberConfig()
			ApplyBomberPreset(&cfg, tt.preset)
			dm := NewDifficultyManager(cfg.Difficulty)

			if got := dm.EnemyCount(cfg.Enemies.Base, cfg.Enemies.Additional, tt.level); got != tt.wantEnemies {
				t.Errorf("EnemyCount() = %d, expected %d", got, tt.wantEnemies)
			}
			if got := dm.TimeLimit(cfg.Timing.LevelTime, cfg.Timing.AdditionalTime, tt.level); got != tt.wantTime {
				t.Errorf("TimeLimit() = %d, expected %d", got, tt.wantTime)
			}
			if got := dm.SmartProbability(cfg.Enemies.SmartProbability); got != tt.wantSmart {
				t.Errorf("SmartProbability() = %v, expected %v", got, tt.wantSmart)
			}
		})
	}
}

func TestDifficultyManagerToggle(t *testing.T) {
	dm := NewDifficultyManager(DifficultyForPreset(DifficultyNormal))
	dm.SetEnabled(false)
	if dm.IsEnabled() || dm.AdditionalEnemies(2) != 0 || dm.AdditionalTime(1800) != 0 {
		t.Error("disabled manager still scales per level")
	}
}

func TestLoadBomberDifficultyAdjustments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	data := []byte("enemies:\n  smart_probability: 1.0\ndifficulty:\n  enemy_bonus: 3\n  time_scale: 2.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadBomber(path)
	if err != nil {
		t.Fatalf("LoadBomber() error = %v", err)
	}

	tests := []struct {
		preset      DifficultyPreset
		wantEnemies int
		wantTime    int
		wantSmart   float64
		wantGrowth  bool
	}{
		{DifficultyNormal, 5, 7200, 1.0, true},
		{DifficultyEasy, 4, 10800, 0.3, true},
		{DifficultyHard, 6, 5400, 0.7, true},
		{DifficultyFixed, 5, 7200, 1.0, false},
		{DifficultyNormal, 5, 7200, 1.0, true}, // switching back keeps the adjustments
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			ApplyBomberPreset(&cfg, tt.preset)
			dm := NewDifficultyManager(cfg.Difficulty)
			if got := dm.BaseEnemies(cfg.Enemies.Base); got != tt.wantEnemies {
				t.Errorf("BaseEnemies() = %d, expected %d", got, tt.wantEnemies)
			}
			if got := dm.LevelTime(cfg.Timing.LevelTime); got != tt.wantTime {
				t.Errorf("LevelTime() = %d, expected %d", got, tt.wantTime)
			}
			if got := dm.SmartProbability(cfg.Enemies.SmartProbability); got != tt.wantSmart {
				t.Errorf("SmartProbability() = %v, expected %v", got, tt.wantSmart)
			}
			if dm.IsEnabled() != tt.wantGrowth {
				t.Errorf("IsEnabled() = %v, expected %v", dm.IsEnabled(), tt.wantGrowth)
			}
		})
	}
}

func TestDifficultySmartOverride(t *testing.T) {
	cfg := DefaultBomberConfig()
	cfg.Difficulty.SmartProbability = 0.9
	for _, preset := range Presets() {
		ApplyBomberPreset(&cfg, preset)
		dm := NewDifficultyManager(cfg.Difficulty)
		if got := dm.SmartProbability(cfg.Enemies.SmartProbability); got != 0.9 {
			t.Errorf("%s: SmartProbability() = %v, expected 0.9", preset, got)
		}
	}
}

func TestIsFixedPreset(t *testing.T) {
	for _, preset := range Presets() {
		if got := IsFixedPreset(preset); got != (preset == DifficultyFixed) {
			t.Errorf("IsFixedPreset(%s) = %v", preset, got)
		}
	}
}
