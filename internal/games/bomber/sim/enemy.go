package sim

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
)

// spawnEnemies replaces the roster with count enemies placed on empty tiles
// far enough from the spawn corner. Several enemies may share a tile.
func (w *World) spawnEnemies(count int, facing core.Dir) {
	s := &w.state
	s.Enemies = s.Enemies[:0]

	var candidates []core.Coord
	for y := w.params.EnemyMinY; y < s.Map.Height; y++ {
		for x := w.params.EnemyMinX; x < s.Map.Width; x++ {
			c := core.C(x, y)
			if t, _ := s.Map.At(c); t == TileEmpty {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}

	for i := 0; i < count; i++ {
		pos := candidates[w.rng.Intn(len(candidates))]
		kind := AIRandom
		if w.rng.Float64() < w.params.SmartProbability {
			kind = AISmart
		}
		s.Enemies = append(s.Enemies, Enemy{
			Pos:    pos,
			Alive:  true,
			Facing: facing,
			Kind:   kind,
		})
	}
}

// updateEnemies lets every living enemy take its turn unless a freeze is active.
func (w *World) updateEnemies() {
	s := &w.state
	if !s.Started || s.FreezeTicks > 0 {
		return
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}
		switch e.Kind {
		case AISmart:
			w.moveSmart(e)
		case AIRandom:
			w.moveRandom(e)
		}
	}
}

// moveRandom keeps walking in the current direction when possible, trying
// the other directions in order otherwise. A stuck enemy may turn around.
func (w *World) moveRandom(e *Enemy) {
	if e.Cooldown > 0 {
		e.Cooldown--
		return
	}

	moved := false
	for _, d := range preferred(e.Facing) {
		target := e.Pos.Step(d)
		if w.state.Map.Walkable(target) && w.bombAt(target) == nil {
			e.Pos = target
			e.Facing = d
			moved = true
			break
		}
	}
	if !moved && w.rng.Float64() < w.params.RefaceProbability {
		e.Facing = core.Dirs[w.rng.Intn(len(core.Dirs))]
	}
	e.Cooldown = w.params.EnemySpeed
}

// moveSmart chases the player along a shortest path. When the player cannot
// be reached it wanders to a random walkable neighbour, bombs included.
func (w *World) moveSmart(e *Enemy) {
	e.Cooldown++
	if e.Cooldown < w.params.EnemySpeed {
		return
	}
	e.Cooldown = 0

	if step, ok := NextStep(w.state.Map, w.bombTiles(), e.Pos, w.state.Player.Pos); ok {
		e.Facing = directionTo(e.Pos, step)
		e.Pos = step
		return
	}

	dirs := core.Dirs
	w.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		target := e.Pos.Step(d)
		if w.state.Map.Walkable(target) {
			e.Pos = target
			e.Facing = d
			return
		}
	}
}

// preferred lists facing first, then the remaining directions in search order.
func preferred(facing core.Dir) []core.Dir {
	dirs := make([]core.Dir, 0, len(core.Dirs))
	dirs = append(dirs, facing)
	for _, d := range core.Dirs {
		if d != facing {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func directionTo(from, to core.Coord) core.Dir {
	switch {
	case to.Y < from.Y:
		return core.DirUp
	case to.Y > from.Y:
		return core.DirDown
	case to.X < from.X:
		return core.DirLeft
	default:
		return core.DirRight
	}
}
