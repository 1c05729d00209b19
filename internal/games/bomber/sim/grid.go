package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// GameMap is the tile grid of a level, indexed Tiles[y][x].
type GameMap struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGameMap creates a map filled with empty tiles.
func NewGameMap(width, height int) *GameMap {
	m := &GameMap{Width: width, Height: height, Tiles: make([][]Tile, height)}
	for y := range m.Tiles {
		m.Tiles[y] = make([]Tile, width)
	}
	return m
}

// InBounds reports whether c lies on the map.
func (m *GameMap) InBounds(c core.Coord) bool {
	return inside(c, m.Width, m.Height)
}

// At returns the tile at c, or false when c is off the map.
func (m *GameMap) At(c core.Coord) (Tile, bool) {
	if !m.InBounds(c) {
		return TileWall, false
	}
	return m.Tiles[c.Y][c.X], true
}

// Set replaces the tile at c. Off-map writes are ignored and return false.
func (m *GameMap) Set(c core.Coord, t Tile) bool {
	if !m.InBounds(c) {
		return false
	}
	m.Tiles[c.Y][c.X] = t
	return true
}

// Walkable reports whether c is on the map and can be stood on.
func (m *GameMap) Walkable(c core.Coord) bool {
	t, ok := m.At(c)
	return ok && t.Walkable()
}

// Count returns how many cells hold tile t.
func (m *GameMap) Count(t Tile) int {
	n := 0
	for _, row := range m.Tiles {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the map.
func (m *GameMap) Clone() *GameMap {
	c := &GameMap{Width: m.Width, Height: m.Height, Tiles: make([][]Tile, len(m.Tiles))}
	for y, row := range m.Tiles {
		c.Tiles[y] = append([]Tile(nil), row...)
	}
	return c
}
