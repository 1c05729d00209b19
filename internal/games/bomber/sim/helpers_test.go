package sim

import (
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// scriptRand replays fixed values. Once a script runs out Float64 returns
// 0.99 (above every probability) and Intn returns 0. Shuffle keeps order.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) Shuffle(int, func(i, j int)) {}

// openMap returns a map with a wall border and nothing inside.
func openMap(w, h int) *GameMap {
	m := NewGameMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				m.Tiles[y][x] = TileWall
			}
		}
	}
	return m
}

// newTestWorld returns a started world on an open 9x9 map with no enemies.
func newTestWorld(t *testing.T) (*World, *scriptRand) {
	t.Helper()
	rng := &scriptRand{}
	p := DefaultParams()
	p.Width, p.Height = 9, 9
	w := New(p, rng)
	w.state.Map = openMap(9, 9)
	w.state.Started = true
	return w, rng
}

func addEnemy(w *World, pos core.Coord, kind AIKind, facing core.Dir) *Enemy {
	w.state.Enemies = append(w.state.Enemies, Enemy{Pos: pos, Alive: true, Facing: facing, Kind: kind})
	return &w.state.Enemies[len(w.state.Enemies)-1]
}

func hasExplosion(w *World, pos core.Coord) bool {
	for _, e := range w.state.Explosions {
		if e.Pos == pos {
			return true
		}
	}
	return false
}
