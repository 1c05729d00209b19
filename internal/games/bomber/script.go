package bomber

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// Script drives a world without a terminal, one command per tick.
type Script interface {
	Next(s sim.Summary) sim.Command
}

// Script names accepted by ParseScript.
const (
	ScriptIdle   = "idle"
	ScriptRandom = "random"
)

// ParseScript returns the named script. The random script draws from rng.
func ParseScript(name string, rng sim.Rand) (Script, error) {
	switch name {
	case ScriptIdle, "":
		return IdleScript{}, nil
	case ScriptRandom:
		return &RandomScript{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown script %q (expected idle or random)", name)
	}
}

// IdleScript starts the game and then waits for the timer or an enemy.
type IdleScript struct{}

// Next implements Script.
func (IdleScript) Next(s sim.Summary) sim.Command {
	if !s.Started {
		return sim.Start
	}
	return sim.None
}

// RandomScript wanders, drops bombs and advances after every cleared level.
type RandomScript struct {
	rng sim.Rand
}

// NewRandomScript creates a random script drawing from rng.
func NewRandomScript(rng sim.Rand) *RandomScript {
	return &RandomScript{rng: rng}
}

// Next implements Script.
func (r *RandomScript) Next(s sim.Summary) sim.Command {
	switch {
	case !s.Started:
		return sim.Start
	case s.Victory:
		return sim.Advance
	}

	// Roughly four moves per second at 60 ticks and a bomb every few seconds
	roll := r.rng.Intn(100)
	switch {
	case roll < 7:
		return sim.Move(core.Dirs[r.rng.Intn(len(core.Dirs))])
	case roll < 9:
		return sim.PlaceBomb
	default:
		return sim.None
	}
}

// RunResult reports how a headless run ended.
type RunResult struct {
	Ticks    int
	Snapshot sim.Snapshot
}

// RunScript feeds script into w for at most ticks ticks, stopping early at
// game over.
func RunScript(w *sim.World, script Script, ticks int) RunResult {
	n := 0
	for n < ticks {
		s := w.Summary()
		if s.GameOver {
			break
		}
		w.Tick(script.Next(s))
		n++
	}
	return RunResult{Ticks: n, Snapshot: w.Snapshot()}
}
