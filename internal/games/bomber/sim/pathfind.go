package sim

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// NextStep runs a breadth-first search from start to goal and returns the
// first tile of a shortest path. Walkable tiles are passable unless listed in
// blocked (live bombs). Neighbours are explored up, down, left, right, which
// fixes tie-breaking between equally short paths. It returns false when goal
// is unreachable or equal to start.
func NextStep(m *GameMap, blocked mapset.Set[core.Coord], start, goal core.Coord) (core.Coord, bool) {
	if start == goal {
		return core.Coord{}, false
	}

	visited := mapset.New[core.Coord]()
	visited.Put(start)
	parent := make(map[core.Coord]core.Coord)
	queue := []core.Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return firstStep(parent, start, goal), true
		}

		for _, d := range core.Dirs {
			next := current.Step(d)
			if visited.Has(next) || !m.Walkable(next) || blocked.Has(next) {
				continue
			}
			visited.Put(next)
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return core.Coord{}, false
}

// firstStep walks the parent chain back from goal to the tile after start.
func firstStep(parent map[core.Coord]core.Coord, start, goal core.Coord) core.Coord {
	step := goal
	for {
		prev := parent[step]
		if prev == start {
			return step
		}
		step = prev
	}
}
