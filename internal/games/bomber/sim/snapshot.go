package sim

import (
	"bytes"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Phase summarises where a run is for hosts that only need the headline.
type Phase string

const (
	PhaseReady     Phase = "ready"
	PhasePlaying   Phase = "playing"
	PhasePaused    Phase = "paused"
	PhaseVictory   Phase = "victory"
	PhaseGameOver  Phase = "game_over"
	PhaseCompleted Phase = "completed"
)

// Snapshot is a read-only deep copy of a world's state. Mutating a snapshot
// never affects the world it came from.
type Snapshot struct {
	Width  int      `msgpack:"w"`
	Height int      `msgpack:"h"`
	Tiles  [][]Tile `msgpack:"tiles"`

	Player     Player         `msgpack:"player"`
	Enemies    []Enemy        `msgpack:"enemies"`
	Bombs      []Bomb         `msgpack:"bombs"`
	Explosions []Explosion    `msgpack:"explosions"`
	PowerUps   []PowerUp      `msgpack:"powerups"`
	Texts      []FloatingText `msgpack:"texts"`

	Score       int    `msgpack:"score"`
	Level       int    `msgpack:"level"`
	MaxLevel    int    `msgpack:"max_level"`
	LevelTimer  int    `msgpack:"timer"`
	FreezeTicks int    `msgpack:"freeze"`
	Tick        uint64 `msgpack:"tick"`

	Started   bool `msgpack:"started"`
	Paused    bool `msgpack:"paused"`
	Muted     bool `msgpack:"muted"`
	GameOver  bool `msgpack:"game_over"`
	Victory   bool `msgpack:"victory"`
	Completed bool `msgpack:"completed"`

	Zoom float64 `msgpack:"zoom"`

	TicksPerSecond int `msgpack:"tps"`
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := &w.state
	m := s.Map.Clone()
	snap := Snapshot{
		Width:          m.Width,
		Height:         m.Height,
		Tiles:          m.Tiles,
		Player:         s.Player,
		Enemies:        append([]Enemy(nil), s.Enemies...),
		Bombs:          make([]Bomb, 0, len(s.Bombs)),
		Explosions:     append([]Explosion(nil), s.Explosions...),
		PowerUps:       append([]PowerUp(nil), s.PowerUps...),
		Texts:          append([]FloatingText(nil), s.Texts...),
		Score:          s.Score,
		Level:          s.Level,
		MaxLevel:       s.MaxLevel,
		LevelTimer:     s.LevelTimer,
		FreezeTicks:    s.FreezeTicks,
		Tick:           s.Tick,
		Started:        s.Started,
		Paused:         s.Paused,
		Muted:          s.Muted,
		GameOver:       s.GameOver,
		Victory:        s.Victory,
		Completed:      s.Completed,
		Zoom:           s.Zoom,
		TicksPerSecond: w.params.TicksPerSecond,
	}
	for _, b := range s.Bombs {
		snap.Bombs = append(snap.Bombs, *b)
	}
	return snap
}

// Summary is the subset of the state hosts poll every tick. It is cheaper
// than a Snapshot because nothing is copied.
type Summary struct {
	Score     int
	Level     int
	Started   bool
	Paused    bool
	Muted     bool
	GameOver  bool
	Victory   bool
	Completed bool
}

// Summary returns the current headline state.
func (w *World) Summary() Summary {
	s := &w.state
	return Summary{
		Score:     s.Score,
		Level:     s.Level,
		Started:   s.Started,
		Paused:    s.Paused,
		Muted:     s.Muted,
		GameOver:  s.GameOver,
		Victory:   s.Victory,
		Completed: s.Completed,
	}
}

// Phase reports the headline state of the run.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Completed:
		return PhaseCompleted
	case s.GameOver:
		return PhaseGameOver
	case !s.Started:
		return PhaseReady
	case s.Victory:
		return PhaseVictory
	case s.Paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// EnemiesAlive counts living enemies.
func (s Snapshot) EnemiesAlive() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// TimeSeconds is the level timer in whole seconds, rounded up.
func (s Snapshot) TimeSeconds() int {
	return ceilDiv(s.LevelTimer, s.TicksPerSecond)
}

// FreezeSeconds is the remaining freeze in whole seconds, rounded up.
func (s Snapshot) FreezeSeconds() int {
	return ceilDiv(s.FreezeTicks, s.TicksPerSecond)
}

// TileAt returns the tile at c with active explosions overlaid.
func (s Snapshot) TileAt(c core.Coord) Tile {
	if !inside(c, s.Width, s.Height) {
		return TileWall
	}
	for _, e := range s.Explosions {
		if e.Pos == c {
			return TileExplosion
		}
	}
	return s.Tiles[c.Y][c.X]
}

// Encode serialises the snapshot with msgpack.
func (s Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot parses bytes produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	err := msgpack.Unmarshal(data, &s)
	return s, err
}

// Digest fingerprints the encoded snapshot. Two worlds with equal digests
// are in the same observable state.
func (s Snapshot) Digest() uint64 {
	data, err := s.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}

func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
