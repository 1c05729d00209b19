package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// maybeSpawnPowerUp rolls for a powerup on a freshly destroyed tile.
func (w *World) maybeSpawnPowerUp(pos core.Coord) {
	if w.rng.Float64() >= w.params.PowerUpProbability {
		return
	}
	kind := powerUpKinds[w.rng.Intn(len(powerUpKinds))]
	w.state.PowerUps = append(w.state.PowerUps, PowerUp{
		Pos:       pos,
		Kind:      kind,
		Remaining: w.params.PowerUpLifetime,
	})
}

// updatePowerUps ages every powerup, removes expired ones and then lets the
// player collect whatever lies on the player's tile.
func (w *World) updatePowerUps() {
	s := &w.state
	live := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.Remaining--
		if p.Remaining <= 0 {
			continue
		}
		if s.Player.Alive && p.Pos == s.Player.Pos {
			w.collect(p)
			continue
		}
		live = append(live, p)
	}
	s.PowerUps = live
}

func (w *World) collect(p PowerUp) {
	s := &w.state
	switch p.Kind {
	case PowerUpBomb:
		s.Player.Bombs++
	case PowerUpRange:
		s.Player.Range++
	case PowerUpFreeze:
		s.FreezeTicks = w.params.FreezeDuration
	}
	w.award(w.params.ScorePowerUp, p.Pos)
}
