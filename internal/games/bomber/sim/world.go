package sim

import (
	"math"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// World owns a GameState and is its only mutator. It is not safe for
// concurrent use; hosts call Tick from a single goroutine.
type World struct {
	params Params
	rng    Rand
	state  GameState
}

// New creates a world waiting for its Start command.
func New(params Params, rng Rand) *World {
	w := &World{params: params.normalized(), rng: rng}
	w.state = w.newState()
	return w
}

// Params returns the tuning the world runs with.
func (w *World) Params() Params {
	return w.params
}

// newState is the single construction path for fresh runs and resets.
func (w *World) newState() GameState {
	p := w.params
	return GameState{
		Map:        Generate(p.Width, p.Height, p.mapProbabilities(), w.rng),
		Player:     w.freshPlayer(),
		Level:      p.StartLevel,
		MaxLevel:   p.MaxLevel,
		LevelTimer: p.LevelTimeFor(p.StartLevel),
		Zoom:       1,
	}
}

func (w *World) freshPlayer() Player {
	return Player{
		Pos:    w.params.PlayerSpawn,
		Alive:  true,
		Bombs:  w.params.StartBombs,
		Range:  w.params.StartRange,
		Facing: core.DirRight,
	}
}

// Tick applies cmd and then advances the simulation by exactly one tick.
func (w *World) Tick(cmd Command) {
	w.apply(cmd)
	w.advance()
}

// apply handles a single command. Commands that make no sense in the
// current state are ignored.
func (w *World) apply(cmd Command) {
	if cmd.Kind == CmdReset {
		w.state = w.newState()
		return
	}

	s := &w.state
	if s.GameOver {
		return
	}

	switch cmd.Kind {
	case CmdStart:
		if !s.Started {
			s.Started = true
			w.spawnEnemies(w.params.EnemyCountFor(s.Level), core.DirUp)
		}
	case CmdAdvance:
		if s.Victory {
			w.advanceLevel()
		}
	case CmdPause:
		if s.Started {
			s.Paused = !s.Paused
		}
	case CmdMute:
		if s.Started {
			s.Muted = !s.Muted
		}
	case CmdZoomIn:
		if s.Started {
			w.setZoom(s.Zoom + w.params.ZoomStep)
		}
	case CmdZoomOut:
		if s.Started {
			w.setZoom(s.Zoom - w.params.ZoomStep)
		}
	case CmdZoomBy:
		if s.Started {
			w.setZoom(s.Zoom * math.Pow(w.params.ZoomFactor, float64(cmd.Steps)))
		}
	case CmdMove:
		if w.canAct() {
			w.movePlayer(cmd.Dir)
		}
	case CmdBomb:
		if w.canAct() {
			w.PlaceBomb(s.Player.Pos, s.Player.Range, OwnerPlayer)
		}
	}
}

func (w *World) canAct() bool {
	s := &w.state
	return s.Started && !s.Paused && !s.Victory && s.Player.Alive
}

func (w *World) setZoom(z float64) {
	w.state.Zoom = core.ClampF(z, w.params.ZoomMin, w.params.ZoomMax)
}

// movePlayer turns the player towards d and steps if the target is walkable.
// A bomb blocks the step unless the player is standing on a bomb already.
func (w *World) movePlayer(d core.Dir) {
	s := &w.state
	s.Player.Facing = d
	target := s.Player.Pos.Step(d)
	if !s.Map.InBounds(target) {
		return
	}
	if w.bombAt(target) != nil && w.bombAt(s.Player.Pos) == nil {
		return
	}
	if s.Map.Walkable(target) {
		s.Player.Pos = target
	}
}

// advance runs one simulation tick.
func (w *World) advance() {
	s := &w.state
	if !s.Started || s.Paused || s.GameOver {
		return
	}
	s.Tick++

	if !s.Victory {
		s.LevelTimer--
		if s.LevelTimer <= 0 {
			s.LevelTimer = 0
			s.GameOver = true
			return
		}
	}

	w.updateBombs()
	w.updateExplosions()
	if s.GameOver {
		return
	}

	if s.FreezeTicks > 0 {
		s.FreezeTicks--
	}
	w.updateEnemies()
	w.checkCollisions()
	if s.GameOver {
		return
	}

	w.updatePowerUps()
	w.updateTexts()
	w.checkVictory()
}

func (w *World) checkCollisions() {
	s := &w.state
	if !s.Player.Alive {
		return
	}
	for _, e := range s.Enemies {
		if e.Alive && e.Pos == s.Player.Pos {
			w.killPlayer()
			return
		}
	}
}

func (w *World) killPlayer() {
	w.state.Player.Alive = false
	w.state.GameOver = true
}
