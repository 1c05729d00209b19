package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestCommandsBeforeStart(t *testing.T) {
	w := New(DefaultParams(), NewRand(1))
	for _, cmd := range []Command{Move(core.DirDown), PlaceBomb, Pause, Mute, ZoomIn, Advance, None} {
		w.Tick(cmd)
	}
	s := w.Snapshot()
	if s.Started || s.Paused || s.Muted || s.Tick != 0 {
		t.Errorf("state changed before start: %+v", s)
	}
	if s.Player.Pos != core.C(1, 1) || len(s.Bombs) != 0 || s.Zoom != 1 {
		t.Errorf("player acted before start: %+v", s.Player)
	}
	if s.Phase() != PhaseReady {
		t.Errorf("Phase() = %v, expected %v", s.Phase(), PhaseReady)
	}
}

func TestStart(t *testing.T) {
	w := New(DefaultParams(), NewRand(1))
	w.Tick(Start)
	s := w.Snapshot()
	if !s.Started || s.Tick != 1 {
		t.Errorf("Started, Tick = %v, %d, expected true, 1", s.Started, s.Tick)
	}
	if len(s.Enemies) != 2 {
		t.Errorf("len(Enemies) = %d, expected 2", len(s.Enemies))
	}
	if s.LevelTimer != w.params.LevelTime-1 {
		t.Errorf("LevelTimer = %d, expected %d", s.LevelTimer, w.params.LevelTime-1)
	}

	// A second start does not respawn the roster.
	w.state.Enemies[0].Alive = false
	w.Tick(Start)
	if w.state.Enemies[0].Alive {
		t.Error("Start respawned enemies")
	}
}

func TestPause(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Tick(Pause)
	tick := w.state.Tick
	timer := w.state.LevelTimer

	w.Tick(Move(core.DirRight))
	w.Tick(PlaceBomb)
	if w.state.Tick != tick || w.state.LevelTimer != timer {
		t.Error("simulation advanced while paused")
	}
	if w.state.Player.Pos != core.C(1, 1) || len(w.state.Bombs) != 0 {
		t.Error("player acted while paused")
	}
	if w.Snapshot().Phase() != PhasePaused {
		t.Errorf("Phase() = %v, expected %v", w.Snapshot().Phase(), PhasePaused)
	}

	w.Tick(Pause)
	if w.state.Paused || w.state.Tick != tick+1 {
		t.Errorf("Paused, Tick = %v, %d, expected false, %d", w.state.Paused, w.state.Tick, tick+1)
	}
}

func TestMute(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Tick(Mute)
	if !w.state.Muted {
		t.Error("Muted = false, expected true")
	}
	w.Tick(Mute)
	if w.state.Muted {
		t.Error("Muted = true, expected false")
	}
}

func TestZoom(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
		want float64
	}{
		{"in", []Command{ZoomIn}, 1.1},
		{"out", []Command{ZoomOut, ZoomOut}, 0.8},
		{"clamp max", repeat(ZoomIn, 40), 3},
		{"clamp min", []Command{ZoomBy(-1000)}, 0.5},
		{"wheel", []Command{ZoomBy(1)}, 1.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			for _, c := range tt.cmds {
				w.Tick(c)
			}
			if diff := w.state.Zoom - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Zoom = %v, expected %v", w.state.Zoom, tt.want)
			}
		})
	}
}

func repeat(c Command, n int) []Command {
	out := make([]Command, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func TestMovePlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	w.state.Map.Set(core.C(1, 3), TileBreakable)
	w.state.Map.Set(core.C(2, 1), TileWater)

	w.Tick(Move(core.DirUp))
	if w.state.Player.Pos != core.C(1, 1) || w.state.Player.Facing != core.DirUp {
		t.Errorf("Player = %+v, expected (1,1) facing up", w.state.Player)
	}
	w.Tick(Move(core.DirRight))
	if w.state.Player.Pos != core.C(2, 1) {
		t.Errorf("Pos = %v, expected water tile (2,1)", w.state.Player.Pos)
	}
	w.Tick(Move(core.DirLeft))
	w.Tick(Move(core.DirDown))
	w.Tick(Move(core.DirDown))
	if w.state.Player.Pos != core.C(1, 2) {
		t.Errorf("Pos = %v, expected (1,2)", w.state.Player.Pos)
	}
}

func TestTimerRunsOut(t *testing.T) {
	w, _ := newTestWorld(t)
	w.state.LevelTimer = 2
	w.Tick(None)
	if w.state.GameOver {
		t.Fatal("GameOver after one tick")
	}
	w.Tick(None)
	if !w.state.GameOver || w.state.LevelTimer != 0 {
		t.Errorf("GameOver, LevelTimer = %v, %d, expected true, 0", w.state.GameOver, w.state.LevelTimer)
	}

	tick := w.state.Tick
	w.Tick(Move(core.DirRight))
	w.Tick(Pause)
	if w.state.Tick != tick || w.state.Paused {
		t.Error("world changed after game over")
	}
}

func TestReset(t *testing.T) {
	w := New(DefaultParams(), NewRand(5))
	w.Tick(Start)
	for i := 0; i < 30; i++ {
		w.Tick(Move(core.DirRight))
	}
	w.state.Score = 90
	w.state.GameOver = true

	w.Tick(Reset)

	s := w.Snapshot()
	if s.Started || s.GameOver || s.Score != 0 || s.Level != 1 || s.Tick != 0 {
		t.Errorf("state after Reset = %+v", s)
	}
	if len(s.Enemies) != 0 || s.LevelTimer != w.params.LevelTime {
		t.Errorf("Enemies, LevelTimer = %d, %d, expected 0, %d", len(s.Enemies), s.LevelTimer, w.params.LevelTime)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []uint64 {
		w := New(DefaultParams(), NewRand(42))
		script := rand.New(rand.NewSource(7))
		cmds := []Command{None, PlaceBomb, Move(core.DirUp), Move(core.DirDown), Move(core.DirLeft), Move(core.DirRight)}

		w.Tick(Start)
		var digests []uint64
		for i := 0; i < 1500; i++ {
			w.Tick(cmds[script.Intn(len(cmds))])
			if i%100 == 0 {
				digests = append(digests, w.Snapshot().Digest())
			}
		}
		return digests
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("digest %d differs: %x vs %x", i, a[i], b[i])
		}
	}
}

func TestSnapshotIsolated(t *testing.T) {
	w, _ := newTestWorld(t)
	w.PlaceBomb(core.C(3, 3), 1, OwnerEnemy)
	addEnemy(w, core.C(5, 5), AIRandom, core.DirUp)

	s := w.Snapshot()
	s.Tiles[3][3] = TileBreakable
	s.Bombs[0].Fuse = 1
	s.Enemies[0].Alive = false

	if tile, _ := w.state.Map.At(core.C(3, 3)); tile != TileEmpty {
		t.Errorf("snapshot shares tiles, got %v", tile)
	}
	if w.state.Bombs[0].Fuse == 1 || !w.state.Enemies[0].Alive {
		t.Error("snapshot shares actors with the world")
	}
}

func TestSnapshotEncode(t *testing.T) {
	w, _ := newTestWorld(t)
	w.PlaceBomb(core.C(3, 3), 1, OwnerEnemy)
	w.Detonate(w.state.Bombs[0])

	s := w.Snapshot()
	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if decoded.Digest() != s.Digest() {
		t.Error("decoded snapshot digest differs")
	}
	if got := decoded.TileAt(core.C(3, 4)); got != TileExplosion {
		t.Errorf("TileAt(3,4) = %v, expected explosion", got)
	}
	if got := decoded.TileAt(core.C(0, 0)); got != TileWall {
		t.Errorf("TileAt(0,0) = %v, expected wall", got)
	}
}

func TestSnapshotSeconds(t *testing.T) {
	s := Snapshot{LevelTimer: 61, FreezeTicks: 60, TicksPerSecond: 60}
	if s.TimeSeconds() != 2 || s.FreezeSeconds() != 1 {
		t.Errorf("TimeSeconds, FreezeSeconds = %d, %d, expected 2, 1", s.TimeSeconds(), s.FreezeSeconds())
	}
}
