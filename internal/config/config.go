// Package config provides YAML-based game configuration loading and
// difficulty management for the bomber game.
package config

// BomberConfig contains all configuration for a bomber run.
type BomberConfig struct {
	Grid        BomberGrid        `yaml:"grid"`
	Timing      BomberTiming      `yaml:"timing"`
	Enemies     BomberEnemies     `yaml:"enemies"`
	Map         BomberMap         `yaml:"map"`
	Scores      BomberScores      `yaml:"scores"`
	Progression BomberProgression `yaml:"progression"`
	View        BomberView        `yaml:"view"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// BomberGrid defines the map size and the player's starting kit.
type BomberGrid struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	StartBombs int `yaml:"start_bombs"`
	StartRange int `yaml:"start_range"`
}

// BomberTiming defines every duration, in ticks.
type BomberTiming struct {
	TicksPerSecond    int `yaml:"ticks_per_second"`
	LevelTime         int `yaml:"level_time"`
	AdditionalTime    int `yaml:"additional_time"` // added per level after the first
	BombFuse          int `yaml:"bomb_fuse"`
	ExplosionDuration int `yaml:"explosion_duration"`
	FreezeDuration    int `yaml:"freeze_duration"`
	PowerUpLifetime   int `yaml:"powerup_lifetime"`
	BlinkThreshold    int `yaml:"blink_threshold"`
	BlinkFrame        int `yaml:"blink_frame"`
	FloatTextDuration int `yaml:"float_text_duration"`
}

// BomberEnemies defines the enemy roster and its behaviour.
type BomberEnemies struct {
	Base              int     `yaml:"base"`
	Additional        int     `yaml:"additional"` // added per level after the first
	MinX              int     `yaml:"min_x"`
	MinY              int     `yaml:"min_y"`
	SmartProbability  float64 `yaml:"smart_probability"`
	RefaceProbability float64 `yaml:"reface_probability"`
	Speed             int     `yaml:"speed"` // ticks between steps
}

// BomberMap defines the random content of generated levels.
type BomberMap struct {
	BreakableProbability float64 `yaml:"breakable_probability"`
	WaterProbability     float64 `yaml:"water_probability"`
	PowerUpProbability   float64 `yaml:"powerup_probability"`
}

// BomberScores defines the points awarded per event.
type BomberScores struct {
	PowerUp   int `yaml:"powerup"`
	Breakable int `yaml:"breakable"`
	Enemy     int `yaml:"enemy"`
	Second    int `yaml:"second"` // per remaining second on victory
}

// BomberProgression defines the campaign length.
type BomberProgression struct {
	StartLevel int `yaml:"start_level"`
	MaxLevel   int `yaml:"max_level"`
}

// BomberView defines presentation parameters.
type BomberView struct {
	TileSize   int     `yaml:"tile_size"`
	ZoomStep   float64 `yaml:"zoom_step"`
	ZoomFactor float64 `yaml:"zoom_factor"`
	ZoomMin    float64 `yaml:"zoom_min"`
	ZoomMax    float64 `yaml:"zoom_max"`
}

// DifficultyConfig selects a preset and adjusts it. The adjustments stack
// on top of the preset's own tuning, so a file can make every preset a
// little harder without losing the differences between them.
type DifficultyConfig struct {
	Preset           string  `yaml:"preset"`
	Progression      bool    `yaml:"progression"`       // false keeps every level like the first
	EnemyBonus       int     `yaml:"enemy_bonus"`       // added to the base roster
	TimeScale        float64 `yaml:"time_scale"`        // multiplies level time
	SmartProbability float64 `yaml:"smart_probability"` // overrides the chase chance when > 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// DifficultyForPreset returns the tuning a preset applies before any
// adjustments from the config file. A zero SmartProbability leaves
// enemies.smart_probability in charge.
func DifficultyForPreset(preset DifficultyPreset) DifficultyConfig {
	switch preset {
	case DifficultyEasy:
		return DifficultyConfig{Preset: string(preset), Progression: true, EnemyBonus: -1, TimeScale: 1.5, SmartProbability: 0.3}
	case DifficultyHard:
		return DifficultyConfig{Preset: string(preset), Progression: true, EnemyBonus: 1, TimeScale: 0.75, SmartProbability: 0.7}
	case DifficultyFixed:
		return DifficultyConfig{Preset: string(preset), Progression: false, TimeScale: 1.0}
	default:
		return DifficultyConfig{Preset: string(DifficultyNormal), Progression: true, TimeScale: 1.0}
	}
}
