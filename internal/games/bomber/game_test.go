package bomber

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultBomberConfig(), 0)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestAnyKeyStarts(t *testing.T) {
	g := newGame(t)
	g.Step(frame())
	if g.State().Started {
		t.Fatal("game started without input")
	}
	g.Step(frame(core.ActionQuit))
	if g.State().Started {
		t.Fatal("quit started the game")
	}

	g.Step(frame(core.ActionAny))
	if !g.State().Started {
		t.Error("State().Started = false, expected true")
	}
	if g.Snapshot().Player.Pos != core.C(1, 1) {
		t.Error("the starting key also moved the player")
	}
}

func TestCommandTranslation(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want sim.Command
	}{
		{"pause wins", frame(core.ActionPause, core.ActionBomb), sim.Pause},
		{"mute", frame(core.ActionMute), sim.Mute},
		{"bomb over move", frame(core.ActionBomb, core.ActionUp), sim.PlaceBomb},
		{"up", frame(core.ActionUp), sim.Move(core.DirUp)},
		{"left", frame(core.ActionLeft), sim.Move(core.DirLeft)},
		{"zoom in", frame(core.ActionZoomIn), sim.ZoomIn},
		{"zoom out", frame(core.ActionZoomOut), sim.ZoomOut},
		{"wheel in", frame(core.ActionWheelIn), sim.ZoomBy(1)},
		{"wheel out", frame(core.ActionWheelOut), sim.ZoomBy(-1)},
		{"unbound key", frame(core.ActionAny), sim.None},
		{"empty", frame(), sim.None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t)
			g.Step(frame(core.ActionAny))
			if got := g.command(tt.in); got != tt.want {
				t.Errorf("command() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRestart(t *testing.T) {
	g := newGame(t)
	g.Step(frame(core.ActionAny))
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionZoomIn))
	}

	g.Step(frame(core.ActionRestart))
	if g.State().Started {
		t.Error("Started right after the reset tick")
	}
	if g.Snapshot().Zoom != 1 {
		t.Errorf("Zoom = %v after restart, expected 1", g.Snapshot().Zoom)
	}

	g.Step(frame())
	if !g.State().Started {
		t.Error("restarted run did not start on the next tick")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionAny)
		case i%97 == 0:
			inputs[i].Set(core.ActionBomb)
		case i%5 < 2:
			inputs[i].Set(core.ActionRight)
		case i%5 == 3:
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() uint64 {
		g := newGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot().Digest()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("Determinism failed: digests differ. Run1=%x, Run2=%x", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Level: 1", "Score: 0", "Press any key to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	g.Step(frame(core.ActionAny))
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "@") {
		t.Error("Render() does not show the player")
	}
	if !strings.Contains(out, "█") {
		t.Error("Render() does not show walls")
	}
	if strings.Contains(out, "Press any key") {
		t.Error("start banner still shown after starting")
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Render() missing pause banner")
	}
}

func TestRenderSmallScreen(t *testing.T) {
	g := newGame(t)
	g.Step(frame(core.ActionAny))
	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionZoomIn))
	}
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "@") {
		t.Error("zoomed viewport lost the player")
	}
}

func TestAxisOffset(t *testing.T) {
	tests := []struct {
		content, viewport, focus int
		want                     int
	}{
		{62, 80, 3, 9},
		{100, 40, 5, 0},
		{100, 40, 50, -30},
		{100, 40, 99, -60},
	}
	for _, tt := range tests {
		if got := axisOffset(tt.content, tt.viewport, tt.focus); got != tt.want {
			t.Errorf("axisOffset(%d, %d, %d) = %d, expected %d", tt.content, tt.viewport, tt.focus, got, tt.want)
		}
	}
}

func TestParamsFor(t *testing.T) {
	tests := []struct {
		preset      config.DifficultyPreset
		wantBase    int
		wantAdd     int
		wantTime    int
		wantAddTime int
		wantSmart   float64
	}{
		{config.DifficultyEasy, 1, 2, 5400, 2700, 0.3},
		{config.DifficultyNormal, 2, 2, 3600, 1800, 0.5},
		{config.DifficultyHard, 3, 2, 2700, 1350, 0.7},
		{config.DifficultyFixed, 2, 0, 3600, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := config.DefaultBomberConfig()
			config.ApplyBomberPreset(&cfg, tt.preset)
			p := ParamsFor(cfg, 0)
			if p.BaseEnemies != tt.wantBase || p.AdditionalEnemies != tt.wantAdd {
				t.Errorf("enemies = %d+%d, expected %d+%d", p.BaseEnemies, p.AdditionalEnemies, tt.wantBase, tt.wantAdd)
			}
			if p.LevelTime != tt.wantTime || p.AdditionalTime != tt.wantAddTime {
				t.Errorf("time = %d+%d, expected %d+%d", p.LevelTime, p.AdditionalTime, tt.wantTime, tt.wantAddTime)
			}
			if p.SmartProbability != tt.wantSmart {
				t.Errorf("SmartProbability = %v, expected %v", p.SmartProbability, tt.wantSmart)
			}
		})
	}
}

func TestParamsForConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	data := []byte("enemies:\n  smart_probability: 1.0\ndifficulty:\n  enemy_bonus: 3\n  time_scale: 2.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadBomber(path)
	if err != nil {
		t.Fatalf("LoadBomber() error = %v", err)
	}
	config.ApplyBomberPreset(&cfg, config.DifficultyNormal)

	p := ParamsFor(cfg, 0)
	if p.SmartProbability != 1.0 {
		t.Errorf("SmartProbability = %v, expected 1.0", p.SmartProbability)
	}
	if p.BaseEnemies != 5 {
		t.Errorf("BaseEnemies = %d, expected 5", p.BaseEnemies)
	}
	if p.LevelTime != 7200 || p.AdditionalTime != 3600 {
		t.Errorf("time = %d+%d, expected 7200+3600", p.LevelTime, p.AdditionalTime)
	}
}

func TestStartLevel(t *testing.T) {
	cfg := config.DefaultBomberConfig()
	if got := ParamsFor(cfg, 4).StartLevel; got != 4 {
		t.Errorf("StartLevel = %d, expected 4", got)
	}
	if got := ParamsFor(cfg, 99).StartLevel; got != cfg.Progression.MaxLevel {
		t.Errorf("StartLevel = %d, expected %d", got, cfg.Progression.MaxLevel)
	}
}

func TestRegisteredVariants(t *testing.T) {
	for _, preset := range config.Presets() {
		id := VariantID(preset)
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
	g, _ := registry.Create("bomber:hard")
	if g.Title() != "Bomber (Hard)" {
		t.Errorf("Title() = %q, expected Bomber (Hard)", g.Title())
	}
}
