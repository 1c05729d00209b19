package config

import "math"

// DifficultyManager derives per-level parameters from the base tuning and
// the active difficulty settings.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager combines the selected preset with the adjustments in
// cfg. An empty or unknown preset counts as normal.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	preset, err := ParsePreset(cfg.Preset)
	if err != nil {
		preset = DifficultyNormal
	}
	base := DifficultyForPreset(preset)

	scale := cfg.TimeScale
	if scale <= 0 {
		scale = 1
	}
	eff := DifficultyConfig{
		Preset:           string(preset),
		Progression:      cfg.Progression && !IsFixedPreset(preset),
		EnemyBonus:       base.EnemyBonus + cfg.EnemyBonus,
		TimeScale:        base.TimeScale * scale,
		SmartProbability: base.SmartProbability,
	}
	if cfg.SmartProbability > 0 {
		eff.SmartProbability = cfg.SmartProbability
	}
	return &DifficultyManager{cfg: eff}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Progression = enabled
}

// IsEnabled returns whether levels get harder as the campaign goes on.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Progression
}

// BaseEnemies returns the first level's roster size. It never drops below one.
func (d *DifficultyManager) BaseEnemies(base int) int {
	return max(1, base+d.cfg.EnemyBonus)
}

// AdditionalEnemies returns the per-level roster growth.
func (d *DifficultyManager) AdditionalEnemies(additional int) int {
	if !d.IsEnabled() {
		return 0
	}
	return additional
}

// LevelTime returns the first level's timer in ticks.
func (d *DifficultyManager) LevelTime(base int) int {
	return max(1, int(math.Round(float64(base)*d.cfg.TimeScale)))
}

// AdditionalTime returns the per-level timer growth in ticks.
func (d *DifficultyManager) AdditionalTime(additional int) int {
	if !d.IsEnabled() {
		return 0
	}
	return int(math.Round(float64(additional) * d.cfg.TimeScale))
}

// SmartProbability returns the chance an enemy chases the player. base is
// used unless the preset or the difficulty section overrides it.
func (d *DifficultyManager) SmartProbability(base float64) float64 {
	if d.cfg.SmartProbability > 0 {
		return clampF(d.cfg.SmartProbability, 0.0, 1.0)
	}
	return clampF(base, 0.0, 1.0)
}

// EnemyCount returns the roster size for a level.
func (d *DifficultyManager) EnemyCount(base, additional, level int) int {
	return d.BaseEnemies(base) + (level-1)*d.AdditionalEnemies(additional)
}

// TimeLimit returns the timer for a level in ticks.
func (d *DifficultyManager) TimeLimit(base, additional, level int) int {
	return d.LevelTime(base) + (level-1)*d.AdditionalTime(additional)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
