package sim

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Detonate resolves the given bombs and every bomb their blasts reach, in
// one pass. Bombs are processed from a worklist; a bomb enters the list at
// most once and a bomb that already went off is ignored, so calling Detonate
// twice on the same bomb is harmless and bomb cycles terminate.
func (w *World) Detonate(bombs ...*Bomb) {
	detonating := mapset.New[*Bomb]()
	queue := make([]*Bomb, 0, len(bombs))
	enqueue := func(b *Bomb) {
		if b == nil || b.detonated || detonating.Has(b) {
			return
		}
		detonating.Put(b)
		queue = append(queue, b)
	}
	for _, b := range bombs {
		enqueue(b)
	}

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		b.detonated = true
		w.removeBomb(b)

		if b.Owner == OwnerPlayer {
			w.state.Player.Bombs++
		}

		w.blastTile(b.Pos)
		for _, d := range core.Dirs {
			pos := b.Pos
			for i := 0; i < b.Range; i++ {
				pos = pos.Step(d)
				tile, ok := w.state.Map.At(pos)
				if !ok || tile == TileWall || tile == TileWater {
					break
				}
				for _, other := range w.state.Bombs {
					if other.Pos == pos {
						enqueue(other)
					}
				}
				if w.blastTile(pos) {
					break
				}
			}
		}
	}
}

// blastTile applies a blast to one tile and reports whether the ray must stop
// there because a breakable tile was destroyed.
func (w *World) blastTile(pos core.Coord) (stop bool) {
	s := &w.state

	if tile, _ := s.Map.At(pos); tile == TileBreakable {
		s.Map.Set(pos, TileEmpty)
		w.award(w.params.ScoreBreakable, pos)
		w.maybeSpawnPowerUp(pos)
		stop = true
	}

	s.Explosions = append(s.Explosions, Explosion{Pos: pos, Remaining: w.params.ExplosionDuration})

	if s.Player.Alive && s.Player.Pos == pos {
		w.killPlayer()
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Alive && e.Pos == pos {
			e.Alive = false
			w.award(w.params.ScoreEnemy, pos)
		}
	}
	return stop
}

// updateExplosions ages blast effects and drops the expired ones.
func (w *World) updateExplosions() {
	s := &w.state
	live := s.Explosions[:0]
	for _, e := range s.Explosions {
		e.Remaining--
		if e.Remaining > 0 {
			live = append(live, e)
		}
	}
	s.Explosions = live
}
