package sim

import (
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func walls(w *World, cs ...core.Coord) {
	for _, c := range cs {
		w.state.Map.Set(c, TileWall)
	}
}

func TestRandomEnemyMoves(t *testing.T) {
	tests := []struct {
		name       string
		bomb       bool
		wantPos    core.Coord
		wantFacing core.Dir
	}{
		{"keeps heading", false, core.C(5, 4), core.DirRight},
		{"avoids bomb", true, core.C(4, 3), core.DirUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			addEnemy(w, core.C(4, 4), AIRandom, core.DirRight)
			if tt.bomb {
				w.PlaceBomb(core.C(5, 4), 1, OwnerEnemy)
			}
			w.Tick(None)

			e := w.state.Enemies[0]
			if e.Pos != tt.wantPos {
				t.Errorf("Pos = %v, expected %v", e.Pos, tt.wantPos)
			}
			if e.Facing != tt.wantFacing {
				t.Errorf("Facing = %v, expected %v", e.Facing, tt.wantFacing)
			}
			if e.Cooldown != w.params.EnemySpeed {
				t.Errorf("Cooldown = %d, expected %d", e.Cooldown, w.params.EnemySpeed)
			}
		})
	}
}

func TestRandomEnemyCooldown(t *testing.T) {
	w, _ := newTestWorld(t)
	addEnemy(w, core.C(4, 4), AIRandom, core.DirRight)
	w.Tick(None)
	w.Tick(None)

	e := w.state.Enemies[0]
	if e.Pos != core.C(5, 4) {
		t.Errorf("Pos = %v, expected (5,4)", e.Pos)
	}
	if e.Cooldown != w.params.EnemySpeed-1 {
		t.Errorf("Cooldown = %d, expected %d", e.Cooldown, w.params.EnemySpeed-1)
	}
}

func TestRandomEnemyStuckTurns(t *testing.T) {
	w, rng := newTestWorld(t)
	walls(w, core.C(5, 4), core.C(4, 5), core.C(5, 6), core.C(6, 5))
	addEnemy(w, core.C(5, 5), AIRandom, core.DirRight)
	rng.floats = []float64{0.1}
	rng.ints = []int{2}

	w.Tick(None)

	e := w.state.Enemies[0]
	if e.Pos != core.C(5, 5) {
		t.Errorf("Pos = %v, expected (5,5)", e.Pos)
	}
	if e.Facing != core.DirLeft {
		t.Errorf("Facing = %v, expected left", e.Facing)
	}
}

func TestSmartEnemyChases(t *testing.T) {
	w, _ := newTestWorld(t)
	e := addEnemy(w, core.C(5, 1), AISmart, core.DirUp)
	e.Cooldown = w.params.EnemySpeed - 2

	w.Tick(None)
	if got := w.state.Enemies[0].Pos; got != core.C(5, 1) {
		t.Fatalf("Pos = %v before cooldown, expected (5,1)", got)
	}

	w.Tick(None)
	got := w.state.Enemies[0]
	if got.Pos != core.C(4, 1) {
		t.Errorf("Pos = %v, expected (4,1)", got.Pos)
	}
	if got.Facing != core.DirLeft {
		t.Errorf("Facing = %v, expected left", got.Facing)
	}
	if got.Cooldown != 0 {
		t.Errorf("Cooldown = %d, expected 0", got.Cooldown)
	}
}

func TestSmartEnemyFallbackIgnoresBombs(t *testing.T) {
	w, _ := newTestWorld(t)
	walls(w, core.C(5, 4), core.C(4, 5), core.C(5, 6))
	w.PlaceBomb(core.C(6, 5), 1, OwnerEnemy)
	e := addEnemy(w, core.C(5, 5), AISmart, core.DirUp)
	e.Cooldown = w.params.EnemySpeed - 1

	w.Tick(None)

	if got := w.state.Enemies[0].Pos; got != core.C(6, 5) {
		t.Errorf("Pos = %v, expected (6,5)", got)
	}
}

func TestFreezeStopsEnemies(t *testing.T) {
	w, _ := newTestWorld(t)
	addEnemy(w, core.C(4, 4), AIRandom, core.DirRight)
	w.state.FreezeTicks = 10

	w.Tick(None)

	if got := w.state.Enemies[0].Pos; got != core.C(4, 4) {
		t.Errorf("Pos = %v, expected (4,4)", got)
	}
	if w.state.FreezeTicks != 9 {
		t.Errorf("FreezeTicks = %d, expected 9", w.state.FreezeTicks)
	}
}

func TestEnemyCatchesPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	addEnemy(w, core.C(2, 1), AIRandom, core.DirLeft)

	w.Tick(None)

	if w.state.Player.Alive {
		t.Error("Player.Alive = true, expected false")
	}
	if !w.state.GameOver {
		t.Error("GameOver = false, expected true")
	}
}

func TestSpawnEnemies(t *testing.T) {
	w := New(DefaultParams(), NewRand(3))
	w.spawnEnemies(6, core.DirUp)

	if len(w.state.Enemies) != 6 {
		t.Fatalf("len(Enemies) = %d, expected 6", len(w.state.Enemies))
	}
	for i, e := range w.state.Enemies {
		if e.Pos.X < 5 || e.Pos.Y < 5 {
			t.Errorf("enemy %d at %v, too close to spawn", i, e.Pos)
		}
		if tile, _ := w.state.Map.At(e.Pos); tile != TileEmpty {
			t.Errorf("enemy %d on %v, expected empty", i, tile)
		}
		if !e.Alive || e.Facing != core.DirUp {
			t.Errorf("enemy %d = %+v, expected alive facing up", i, e)
		}
	}
}

func TestSpawnEnemiesNoRoom(t *testing.T) {
	w, _ := newTestWorld(t)
	w.params.EnemyMinX = 20
	w.spawnEnemies(4, core.DirUp)
	if len(w.state.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, expected 0", len(w.state.Enemies))
	}
}

func TestSpawnEnemyKinds(t *testing.T) {
	w, rng := newTestWorld(t)
	rng.floats = []float64{0.1, 0.9}
	w.spawnEnemies(2, core.DirRight)

	if w.state.Enemies[0].Kind != AISmart || w.state.Enemies[1].Kind != AIRandom {
		t.Errorf("kinds = %v, %v, expected smart, random", w.state.Enemies[0].Kind, w.state.Enemies[1].Kind)
	}
}
