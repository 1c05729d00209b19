package sim

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// PlaceBomb plants a bomb at pos. It fails when the player has no bombs
// left, the tile is a wall, water or off the map, or a bomb is already there.
func (w *World) PlaceBomb(pos core.Coord, blastRange int, owner Owner) bool {
	s := &w.state
	if owner == OwnerPlayer && s.Player.Bombs <= 0 {
		return false
	}
	tile, ok := s.Map.At(pos)
	if !ok || tile == TileWall || tile == TileWater {
		return false
	}
	if w.bombAt(pos) != nil {
		return false
	}

	if owner == OwnerPlayer {
		s.Player.Bombs--
	}
	s.Bombs = append(s.Bombs, &Bomb{
		Pos:   pos,
		Range: blastRange,
		Fuse:  w.params.BombFuse,
		Owner: owner,
	})
	return true
}

// updateBombs burns every fuse by one tick. Expired bombs leave the active
// list before any of them detonates.
func (w *World) updateBombs() {
	s := &w.state
	var expired []*Bomb
	live := s.Bombs[:0]
	for _, b := range s.Bombs {
		b.Fuse--
		if b.Fuse <= 0 {
			b.Fuse = 0
			expired = append(expired, b)
			continue
		}
		live = append(live, b)
	}
	s.Bombs = live
	if len(expired) > 0 {
		w.Detonate(expired...)
	}
}

func (w *World) bombAt(pos core.Coord) *Bomb {
	for _, b := range w.state.Bombs {
		if b.Pos == pos {
			return b
		}
	}
	return nil
}

func (w *World) removeBomb(target *Bomb) {
	s := &w.state
	for i, b := range s.Bombs {
		if b == target {
			s.Bombs = append(s.Bombs[:i], s.Bombs[i+1:]...)
			return
		}
	}
}

// bombTiles returns the tiles currently holding a bomb.
func (w *World) bombTiles() mapset.Set[core.Coord] {
	tiles := mapset.New[core.Coord]()
	for _, b := range w.state.Bombs {
		tiles.Put(b.Pos)
	}
	return tiles
}
