package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default bomber configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Grid: BomberGrid{
			Width:      31,
			Height:     13,
			StartBombs: 1,
			StartRange: 1,
		},
		Timing: BomberTiming{
			TicksPerSecond:    60,
			LevelTime:         3600, // one minute
			AdditionalTime:    1800,
			BombFuse:          180,
			ExplosionDuration: 30,
			FreezeDuration:    300,
			PowerUpLifetime:   600,
			BlinkThreshold:    180,
			BlinkFrame:        10,
			FloatTextDuration: 60,
		},
		Enemies: BomberEnemies{
			Base:              2,
			Additional:        2,
			MinX:              5,
			MinY:              5,
			SmartProbability:  0.5,
			RefaceProbability: 0.2,
			Speed:             60,
		},
		Map: BomberMap{
			BreakableProbability: 0.2,
			WaterProbability:     0.05,
			PowerUpProbability:   0.3,
		},
		Scores: BomberScores{
			PowerUp:   20,
			Breakable: 10,
			Enemy:     30,
			Second:    1,
		},
		Progression: BomberProgression{
			StartLevel: 1,
			MaxLevel:   10,
		},
		View: BomberView{
			TileSize:   60,
			ZoomStep:   0.1,
			ZoomFactor: 1.02,
			ZoomMin:    0.5,
			ZoomMax:    3.0,
		},
		Difficulty: DifficultyConfig{
			Preset:      string(DifficultyNormal),
			Progression: true,
			TimeScale:   1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBomberYAML
}
