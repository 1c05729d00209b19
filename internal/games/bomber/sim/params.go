// Package sim is the deterministic bomber simulation: map generation, bombs
// and chained explosions, enemy AI, powerups, scoring and level progression.
//
// A World owns all state. Hosts push one Command per Tick and read
// Snapshots; nothing in this package blocks, logs or touches the terminal.
package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// Params holds every tunable of the simulation. Durations are in ticks.
type Params struct {
	Width  int
	Height int

	PlayerSpawn core.Coord
	StartBombs  int
	StartRange  int

	StartLevel        int
	MaxLevel          int
	BaseEnemies       int
	AdditionalEnemies int
	EnemyMinX         int
	EnemyMinY         int
	SmartProbability  float64
	RefaceProbability float64
	EnemySpeed        int

	TicksPerSecond int
	LevelTime      int
	AdditionalTime int

	BombFuse          int
	ExplosionDuration int
	FreezeDuration    int

	BreakableProbability float64
	WaterProbability     float64
	PowerUpProbability   float64
	PowerUpLifetime      int
	BlinkThreshold       int
	BlinkFrame           int

	ScorePowerUp   int
	ScoreBreakable int
	ScoreEnemy     int
	ScoreSecond    int

	FloatTextDuration int
	TileSize          int

	ZoomStep   float64
	ZoomFactor float64
	ZoomMin    float64
	ZoomMax    float64
}

// DefaultParams returns the classic campaign tuning.
func DefaultParams() Params {
	return Params{
		Width:       31,
		Height:      13,
		PlayerSpawn: core.C(1, 1),
		StartBombs:  1,
		StartRange:  1,

		StartLevel:        1,
		MaxLevel:          10,
		BaseEnemies:       2,
		AdditionalEnemies: 2,
		EnemyMinX:         5,
		EnemyMinY:         5,
		SmartProbability:  0.5,
		RefaceProbability: 0.2,
		EnemySpeed:        60,

		TicksPerSecond: 60,
		LevelTime:      3600,
		AdditionalTime: 1800,

		BombFuse:          180,
		ExplosionDuration: 30,
		FreezeDuration:    300,

		BreakableProbability: 0.2,
		WaterProbability:     0.05,
		PowerUpProbability:   0.3,
		PowerUpLifetime:      600,
		BlinkThreshold:       180,
		BlinkFrame:           10,

		ScorePowerUp:   20,
		ScoreBreakable: 10,
		ScoreEnemy:     30,
		ScoreSecond:    1,

		FloatTextDuration: 60,
		TileSize:          60,

		ZoomStep:   0.1,
		ZoomFactor: 1.02,
		ZoomMin:    0.5,
		ZoomMax:    3.0,
	}
}

// normalized fills zero or invalid values with their defaults.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.Width < minMapSize {
		p.Width = minMapSize
	}
	if p.Height < minMapSize {
		p.Height = minMapSize
	}
	if p.StartLevel < 1 {
		p.StartLevel = 1
	}
	if p.MaxLevel < p.StartLevel {
		p.MaxLevel = p.StartLevel
	}
	if p.TicksPerSecond <= 0 {
		p.TicksPerSecond = d.TicksPerSecond
	}
	if p.BombFuse <= 0 {
		p.BombFuse = d.BombFuse
	}
	if p.ExplosionDuration <= 0 {
		p.ExplosionDuration = d.ExplosionDuration
	}
	if p.BlinkFrame <= 0 {
		p.BlinkFrame = d.BlinkFrame
	}
	if p.TileSize <= 0 {
		p.TileSize = d.TileSize
	}
	if p.ZoomFactor <= 1 {
		p.ZoomFactor = d.ZoomFactor
	}
	if p.ZoomMin <= 0 || p.ZoomMax < p.ZoomMin {
		p.ZoomMin, p.ZoomMax = d.ZoomMin, d.ZoomMax
	}
	if !inside(p.PlayerSpawn, p.Width, p.Height) {
		p.PlayerSpawn = d.PlayerSpawn
	}
	return p
}

// LevelTimeFor returns the timer a level starts with.
func (p Params) LevelTimeFor(level int) int {
	return p.LevelTime + (level-1)*p.AdditionalTime
}

// EnemyCountFor returns the size of a level's enemy roster.
func (p Params) EnemyCountFor(level int) int {
	return p.BaseEnemies + (level-1)*p.AdditionalEnemies
}

func (p Params) mapProbabilities() MapProbabilities {
	return MapProbabilities{Breakable: p.BreakableProbability, Water: p.WaterProbability}
}

func inside(c core.Coord, w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}
