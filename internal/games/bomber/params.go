package bomber

import (
	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// ParamsFor converts a configuration into simulation parameters. The
// difficulty settings scale the roster, the timer and the share of smart
// enemies. startLevel overrides the configured first level when positive.
func ParamsFor(cfg config.BomberConfig, startLevel int) sim.Params {
	dm := config.NewDifficultyManager(cfg.Difficulty)

	p := sim.DefaultParams()
	p.Width = cfg.Grid.Width
	p.Height = cfg.Grid.Height
	p.StartBombs = cfg.Grid.StartBombs
	p.StartRange = cfg.Grid.StartRange

	p.StartLevel = cfg.Progression.StartLevel
	if startLevel > 0 {
		p.StartLevel = min(startLevel, cfg.Progression.MaxLevel)
	}
	p.MaxLevel = cfg.Progression.MaxLevel

	p.BaseEnemies = dm.BaseEnemies(cfg.Enemies.Base)
	p.AdditionalEnemies = dm.AdditionalEnemies(cfg.Enemies.Additional)
	p.EnemyMinX = cfg.Enemies.MinX
	p.EnemyMinY = cfg.Enemies.MinY
	p.SmartProbability = dm.SmartProbability(cfg.Enemies.SmartProbability)
	p.RefaceProbability = cfg.Enemies.RefaceProbability
	p.EnemySpeed = cfg.Enemies.Speed

	p.TicksPerSecond = cfg.Timing.TicksPerSecond
	p.LevelTime = dm.LevelTime(cfg.Timing.LevelTime)
	p.AdditionalTime = dm.AdditionalTime(cfg.Timing.AdditionalTime)
	p.BombFuse = cfg.Timing.BombFuse
	p.ExplosionDuration = cfg.Timing.ExplosionDuration
	p.FreezeDuration = cfg.Timing.FreezeDuration
	p.PowerUpLifetime = cfg.Timing.PowerUpLifetime
	p.BlinkThreshold = cfg.Timing.BlinkThreshold
	p.BlinkFrame = cfg.Timing.BlinkFrame
	p.FloatTextDuration = cfg.Timing.FloatTextDuration

	p.BreakableProbability = cfg.Map.BreakableProbability
	p.WaterProbability = cfg.Map.WaterProbability
	p.PowerUpProbability = cfg.Map.PowerUpProbability

	p.ScorePowerUp = cfg.Scores.PowerUp
	p.ScoreBreakable = cfg.Scores.Breakable
	p.ScoreEnemy = cfg.Scores.Enemy
	p.ScoreSecond = cfg.Scores.Second

	p.TileSize = cfg.View.TileSize
	p.ZoomStep = cfg.View.ZoomStep
	p.ZoomFactor = cfg.View.ZoomFactor
	p.ZoomMin = cfg.View.ZoomMin
	p.ZoomMax = cfg.View.ZoomMax
	return p
}
