package sim

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestNextStepOpenGrid(t *testing.T) {
	m := openMap(9, 9)
	none := mapset.New[core.Coord]()

	tests := []struct {
		start, goal core.Coord
	}{
		{core.C(1, 1), core.C(7, 7)},
		{core.C(7, 7), core.C(1, 1)},
		{core.C(4, 1), core.C(4, 7)},
		{core.C(2, 5), core.C(6, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.start.String()+"->"+tt.goal.String(), func(t *testing.T) {
			step, ok := NextStep(m, none, tt.start, tt.goal)
			if !ok {
				t.Fatal("NextStep() found no path")
			}
			if step.Manhattan(tt.start) != 1 {
				t.Errorf("NextStep() = %v, not adjacent to %v", step, tt.start)
			}
			if got, want := step.Manhattan(tt.goal), tt.start.Manhattan(tt.goal)-1; got != want {
				t.Errorf("distance after step = %d, expected %d", got, want)
			}
		})
	}
}

func TestNextStepTieBreak(t *testing.T) {
	m := openMap(9, 9)
	// Up is explored before Right, so a diagonal goal is approached vertically.
	step, ok := NextStep(m, mapset.New[core.Coord](), core.C(3, 5), core.C(5, 3))
	if !ok || step != core.C(3, 4) {
		t.Errorf("NextStep() = %v, %v, expected (3,4), true", step, ok)
	}
}

func TestNextStepUnreachable(t *testing.T) {
	m := openMap(9, 9)
	for _, c := range []core.Coord{{X: 5, Y: 4}, {X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}} {
		m.Set(c, TileWall)
	}
	if _, ok := NextStep(m, mapset.New[core.Coord](), core.C(1, 1), core.C(5, 5)); ok {
		t.Error("NextStep() into a walled cell = true, expected false")
	}
}

func TestNextStepBlockedByBomb(t *testing.T) {
	m := NewGameMap(5, 3)
	for x := 0; x < 5; x++ {
		m.Set(core.C(x, 0), TileWall)
		m.Set(core.C(x, 2), TileWall)
	}
	m.Set(core.C(0, 1), TileWall)
	m.Set(core.C(4, 1), TileWall)

	blocked := mapset.New[core.Coord]()
	blocked.Put(core.C(2, 1))
	if _, ok := NextStep(m, blocked, core.C(1, 1), core.C(3, 1)); ok {
		t.Error("NextStep() through a bomb = true, expected false")
	}
	if step, ok := NextStep(m, mapset.New[core.Coord](), core.C(1, 1), core.C(3, 1)); !ok || step != core.C(2, 1) {
		t.Errorf("NextStep() = %v, %v, expected (2,1), true", step, ok)
	}
}

func TestNextStepSameTile(t *testing.T) {
	m := openMap(5, 5)
	if _, ok := NextStep(m, mapset.New[core.Coord](), core.C(2, 2), core.C(2, 2)); ok {
		t.Error("NextStep(start == goal) = true, expected false")
	}
}
