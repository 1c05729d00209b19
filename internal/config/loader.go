package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadBomber loads the bomber configuration.
// Search order: customPath -> ~/.bomber/configs/bomber.yaml -> ./configs/bomber.yaml -> embedded default
func LoadBomber(customPath string) (BomberConfig, error) {
	// Keys missing from a file keep their default values.
	cfg := DefaultBomberConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("bomber.yaml"), filepath.Join("configs", "bomber.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBomberYAML, &cfg); err != nil {
		return DefaultBomberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (BomberConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BomberConfig{}, false
	}
	cfg := DefaultBomberConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BomberConfig{}, false
	}
	if cfg.Validate() != nil {
		return BomberConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomber", "configs", filename)
}

// Validate rejects values the game cannot run with.
func (c BomberConfig) Validate() error {
	switch {
	case c.Grid.Width < 5 || c.Grid.Height < 5:
		return fmt.Errorf("grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height)
	case c.Timing.TicksPerSecond <= 0:
		return fmt.Errorf("ticks_per_second must be positive, got %d", c.Timing.TicksPerSecond)
	case c.Timing.LevelTime <= 0:
		return fmt.Errorf("level_time must be positive, got %d", c.Timing.LevelTime)
	case c.Timing.BombFuse <= 0:
		return fmt.Errorf("bomb_fuse must be positive, got %d", c.Timing.BombFuse)
	case c.Progression.StartLevel < 1 || c.Progression.MaxLevel < c.Progression.StartLevel:
		return fmt.Errorf("levels must satisfy 1 <= start_level <= max_level, got %d..%d",
			c.Progression.StartLevel, c.Progression.MaxLevel)
	case !probability(c.Map.BreakableProbability) || !probability(c.Map.WaterProbability) ||
		!probability(c.Map.PowerUpProbability) || !probability(c.Enemies.SmartProbability) ||
		!probability(c.Difficulty.SmartProbability):
		return fmt.Errorf("probabilities must be within [0, 1]")
	case c.Map.BreakableProbability+c.Map.WaterProbability > 1:
		return fmt.Errorf("breakable and water probabilities add up to more than 1")
	case c.Difficulty.TimeScale < 0:
		return fmt.Errorf("time_scale must not be negative, got %v", c.Difficulty.TimeScale)
	}
	return nil
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}

// ParsePreset converts a preset name into a DifficultyPreset.
func ParsePreset(name string) (DifficultyPreset, error) {
	preset := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range Presets() {
		if p == preset {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (valid: easy, normal, hard, fixed)", name)
}

// ApplyBomberPreset selects a difficulty preset. The file's difficulty
// adjustments are kept and applied on top of it.
func ApplyBomberPreset(cfg *BomberConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
}
