// Package bomber adapts the bomber simulation to the platform: it turns
// input frames into simulation commands and draws snapshots as text.
package bomber

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

// GameID prefixes every variant ID; the preset follows after a colon.
const GameID = "bomber"

// Game implements registry.Game on top of a sim.World.
type Game struct {
	cfg        config.BomberConfig
	startLevel int

	world   *sim.World
	pending []sim.Command

	screenW int
	screenH int
}

// Package-level configuration shared by games created through the registry.
var (
	defaultsMu         sync.RWMutex
	defaultConfig      = config.DefaultBomberConfig()
	selectedStartLevel int
)

// SetDefaultConfig sets the configuration registry-created games start from.
func SetDefaultConfig(cfg config.BomberConfig) {
	defaultsMu.Lock()
	defaultConfig = cfg
	defaultsMu.Unlock()
}

// SetStartLevel sets the starting level for registry-created games.
// 0 means the configured first level.
func SetStartLevel(level int) {
	defaultsMu.Lock()
	selectedStartLevel = level
	defaultsMu.Unlock()
}

func init() {
	for _, preset := range config.Presets() {
		registry.Register(VariantID(preset), func() registry.Game {
			return New(preset)
		})
	}
}

// VariantID returns the registry and score key of a difficulty preset.
func VariantID(preset config.DifficultyPreset) string {
	return GameID + ":" + string(preset)
}

// New creates a game using the shared configuration with preset applied.
func New(preset config.DifficultyPreset) *Game {
	defaultsMu.RLock()
	cfg := defaultConfig
	level := selectedStartLevel
	defaultsMu.RUnlock()

	config.ApplyBomberPreset(&cfg, preset)
	return NewWithConfig(cfg, level)
}

// NewWithConfig creates a game that uses cfg as is.
func NewWithConfig(cfg config.BomberConfig, startLevel int) *Game {
	if cfg.Difficulty.Preset == "" {
		cfg.Difficulty.Preset = string(config.DifficultyNormal)
	}
	return &Game{cfg: cfg, startLevel: startLevel}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return VariantID(config.DifficultyPreset(g.cfg.Difficulty.Preset))
}

// Title returns the display name.
func (g *Game) Title() string {
	preset := g.cfg.Difficulty.Preset
	return fmt.Sprintf("Bomber (%s)", strings.ToUpper(preset[:1])+preset[1:])
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.pending = g.pending[:0]
	g.world = sim.New(ParamsFor(g.cfg, g.startLevel), sim.NewRand(seed))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	g.world.Tick(g.command(in))
	return core.StepResult{State: g.State()}
}

// command picks the single simulation command for this tick. Restart
// resets the world and starts the new run on the following tick.
func (g *Game) command(in core.InputFrame) sim.Command {
	if in.Has(core.ActionRestart) {
		g.pending = append(g.pending[:0], sim.Start)
		return sim.Reset
	}
	if len(g.pending) > 0 {
		cmd := g.pending[0]
		g.pending = g.pending[1:]
		return cmd
	}
	if !actionable(in) {
		return sim.None
	}

	s := g.world.Summary()
	switch {
	case s.GameOver:
		return sim.None
	case !s.Started:
		return sim.Start
	case s.Victory:
		return sim.Advance
	}

	switch {
	case in.Has(core.ActionPause):
		return sim.Pause
	case in.Has(core.ActionMute):
		return sim.Mute
	case in.Has(core.ActionBomb):
		return sim.PlaceBomb
	case in.Has(core.ActionUp):
		return sim.Move(core.DirUp)
	case in.Has(core.ActionDown):
		return sim.Move(core.DirDown)
	case in.Has(core.ActionLeft):
		return sim.Move(core.DirLeft)
	case in.Has(core.ActionRight):
		return sim.Move(core.DirRight)
	case in.Has(core.ActionZoomIn):
		return sim.ZoomIn
	case in.Has(core.ActionZoomOut):
		return sim.ZoomOut
	case in.Has(core.ActionWheelIn):
		return sim.ZoomBy(1)
	case in.Has(core.ActionWheelOut):
		return sim.ZoomBy(-1)
	}
	return sim.None
}

// actionable reports whether the frame holds any action the game reacts to.
// Quit and Back belong to the platform.
func actionable(in core.InputFrame) bool {
	for a, on := range in.Actions {
		if on && a != core.ActionNone && a != core.ActionQuit && a != core.ActionBack {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.Summary()
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		Started:  s.Started,
		GameOver: s.GameOver,
		Victory:  s.Victory,
		Paused:   s.Paused,
		Muted:    s.Muted,
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() sim.Snapshot {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.world.Snapshot()
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.BomberConfig {
	return g.cfg
}
