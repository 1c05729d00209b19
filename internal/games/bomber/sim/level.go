package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// checkVictory declares the level won once every enemy is dead. The
// remaining time is paid out as a bonus and the timer stops.
func (w *World) checkVictory() {
	s := &w.state
	if s.Victory || len(s.Enemies) == 0 {
		return
	}
	for _, e := range s.Enemies {
		if e.Alive {
			return
		}
	}

	s.Victory = true
	seconds := ceilDiv(s.LevelTimer, w.params.TicksPerSecond)
	s.Score += seconds * w.params.ScoreSecond
	s.LevelTimer = 0
}

// advanceLevel moves to the next level, or ends the run after the last one.
// Score and any running freeze carry over. The player starts fresh.
func (w *World) advanceLevel() {
	s := &w.state
	next := s.Level + 1
	if next > s.MaxLevel {
		s.GameOver = true
		s.Completed = true
		return
	}

	s.Level = next
	s.Map = Generate(w.params.Width, w.params.Height, w.params.mapProbabilities(), w.rng)
	s.Player = w.freshPlayer()
	s.LevelTimer = w.params.LevelTimeFor(next)
	s.Bombs = nil
	s.Explosions = nil
	s.PowerUps = nil
	s.Victory = false
	w.spawnEnemies(w.params.EnemyCountFor(next), core.DirRight)
}
