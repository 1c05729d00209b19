package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// minMapSize keeps the spawn pocket inside the border wall.
const minMapSize = 5

// spawnPocket is always cleared so the player can plant a bomb and step aside.
var spawnPocket = [...]core.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}}

// MapProbabilities are the chances that a free cell becomes breakable or water.
type MapProbabilities struct {
	Breakable float64
	Water     float64
}

// Generate builds a level map. Border cells and cells with both coordinates
// even are walls; every other cell draws one random value deciding between
// breakable, water and empty. The spawn pocket is then cleared.
func Generate(width, height int, probs MapProbabilities, rng Rand) *GameMap {
	width = core.Max(width, minMapSize)
	height = core.Max(height, minMapSize)
	m := NewGameMap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case x == 0 || y == 0 || x == width-1 || y == height-1:
				m.Tiles[y][x] = TileWall
			case x%2 == 0 && y%2 == 0:
				m.Tiles[y][x] = TileWall
			default:
				r := rng.Float64()
				switch {
				case r < probs.Breakable:
					m.Tiles[y][x] = TileBreakable
				case r < probs.Breakable+probs.Water:
					m.Tiles[y][x] = TileWater
				default:
					m.Tiles[y][x] = TileEmpty
				}
			}
		}
	}

	for _, c := range spawnPocket {
		m.Set(c, TileEmpty)
	}
	return m
}
