package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// Tile is the content of one map cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileBreakable
	// TileExplosion never lives in a GameMap. Snapshot.TileAt reports it for
	// cells covered by an active explosion.
	TileExplosion
	TileWater
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileBreakable:
		return "breakable"
	case TileExplosion:
		return "explosion"
	case TileWater:
		return "water"
	default:
		return "unknown"
	}
}

// Walkable reports whether actors may stand on the tile.
func (t Tile) Walkable() bool {
	return t == TileEmpty || t == TileWater
}

// Owner identifies who planted a bomb.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// AIKind selects an enemy's movement behaviour.
type AIKind uint8

const (
	AISmart AIKind = iota
	AIRandom
)

// String returns the behaviour name.
func (k AIKind) String() string {
	switch k {
	case AISmart:
		return "smart"
	case AIRandom:
		return "random"
	default:
		return "unknown"
	}
}

// PowerUpKind is the effect a powerup grants on pickup.
type PowerUpKind uint8

const (
	PowerUpBomb PowerUpKind = iota
	PowerUpRange
	PowerUpFreeze
)

var powerUpKinds = [...]PowerUpKind{PowerUpBomb, PowerUpRange, PowerUpFreeze}

// String returns the powerup name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBomb:
		return "bomb"
	case PowerUpRange:
		return "range"
	case PowerUpFreeze:
		return "freeze"
	default:
		return "unknown"
	}
}

// Player is the single human-controlled actor.
type Player struct {
	Pos    core.Coord
	Alive  bool
	Bombs  int // bombs that can still be planted
	Range  int
	Facing core.Dir
}

// Enemy is a roaming hostile actor.
type Enemy struct {
	Pos      core.Coord
	Alive    bool
	Facing   core.Dir
	Cooldown int
	Kind     AIKind
}

// Bomb is a planted bomb counting down to detonation.
type Bomb struct {
	Pos   core.Coord
	Range int
	Fuse  int
	Owner Owner

	detonated bool
}

// Explosion is a visible blast effect on a single tile.
type Explosion struct {
	Pos       core.Coord
	Remaining int
}

// PowerUp is a collectible left behind by a destroyed breakable tile.
type PowerUp struct {
	Pos       core.Coord
	Kind      PowerUpKind
	Remaining int
}

// Visible reports whether the powerup should be drawn this frame. Once the
// countdown drops below threshold it blinks with the given frame period.
func (p PowerUp) Visible(threshold, frame int) bool {
	if p.Remaining >= threshold || frame <= 0 {
		return true
	}
	return (p.Remaining/frame)%2 == 0
}

// FloatingText is score feedback drifting up from where points were earned.
// X and Y are in pixel units (tile * TileSize).
type FloatingText struct {
	X, Y      int
	Text      string
	Remaining int
}

// Alpha returns the fade level in [0, 1] for a text of the given lifetime.
func (f FloatingText) Alpha(duration int) float64 {
	if duration <= 0 {
		return 0
	}
	return core.ClampF(float64(f.Remaining)/float64(duration), 0, 1)
}

// GameState is the authoritative state owned by a World.
type GameState struct {
	Map        *GameMap
	Player     Player
	Enemies    []Enemy
	Bombs      []*Bomb
	Explosions []Explosion
	PowerUps   []PowerUp
	Texts      []FloatingText

	Score       int
	Level       int
	MaxLevel    int
	LevelTimer  int
	FreezeTicks int
	Tick        uint64

	Started   bool
	Paused    bool
	Muted     bool
	GameOver  bool
	Victory   bool
	Completed bool // advanced past the last level

	Zoom float64
}
