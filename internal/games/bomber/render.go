package bomber

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
	"github.com/vovakirdan/tui-bomber/internal/i18n"
)

const (
	hudHeight    = 2 // status line and separator
	footerHeight = 1
	fuseWarning  = 60 // ticks before detonation at which a bomb flashes
)

type glyph struct {
	r rune
	c core.Color
}

var tileGlyphs = map[sim.Tile]glyph{
	sim.TileEmpty:     {' ', core.ColorDefault},
	sim.TileWall:      {'█', core.ColorGray},
	sim.TileBreakable: {'▒', core.ColorOrange},
	sim.TileWater:     {'~', core.ColorBlue},
	sim.TileExplosion: {'*', core.ColorBrightRed},
}

var powerUpGlyphs = map[sim.PowerUpKind]glyph{
	sim.PowerUpBomb:   {'B', core.ColorBrightYellow},
	sim.PowerUpRange:  {'R', core.ColorBrightMagenta},
	sim.PowerUpFreeze: {'F', core.ColorBrightCyan},
}

// view maps tiles to screen cells for one frame.
type view struct {
	area     core.Rect
	cw, ch   int // cells per tile
	offX     int
	offY     int
	tileSize int
}

func newView(snap sim.Snapshot, area core.Rect, tileSize int) view {
	v := view{
		area:     area,
		cw:       max(1, int(math.Round(2*snap.Zoom))),
		ch:       max(1, int(math.Round(snap.Zoom))),
		tileSize: max(1, tileSize),
	}
	v.offX = area.X + axisOffset(snap.Width*v.cw, area.W, snap.Player.Pos.X*v.cw+v.cw/2)
	v.offY = area.Y + axisOffset(snap.Height*v.ch, area.H, snap.Player.Pos.Y*v.ch+v.ch/2)
	return v
}

// axisOffset centres content that fits and otherwise scrolls it to keep
// focus near the middle of the viewport.
func axisOffset(content, viewport, focus int) int {
	if content <= viewport {
		return (viewport - content) / 2
	}
	cam := core.Clamp(focus-viewport/2, 0, content-viewport)
	return -cam
}

// fill paints a whole tile block.
func (v view) fill(dst *core.Screen, c core.Coord, g glyph) {
	x0, y0 := v.offX+c.X*v.cw, v.offY+c.Y*v.ch
	for dy := 0; dy < v.ch; dy++ {
		for dx := 0; dx < v.cw; dx++ {
			v.set(dst, x0+dx, y0+dy, g)
		}
	}
}

// mark draws a single glyph in the middle of a tile block.
func (v view) mark(dst *core.Screen, c core.Coord, g glyph) {
	v.set(dst, v.offX+c.X*v.cw+v.cw/2, v.offY+c.Y*v.ch+v.ch/2, g)
}

func (v view) set(dst *core.Screen, x, y int, g glyph) {
	if v.area.Contains(x, y) {
		dst.SetColor(x, y, g.r, g.c)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	snap := g.world.Snapshot()
	params := g.world.Params()

	g.renderHUD(dst, snap)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	v := newView(snap, area, params.TileSize)
	renderMap(dst, v, snap)
	renderActors(dst, v, snap, params)
	renderTexts(dst, v, snap, params)

	g.renderFooter(dst, snap)
	renderOverlay(dst, snap)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	fields := []string{
		fmt.Sprintf(i18n.T("HUD_ENEMIES"), snap.EnemiesAlive()),
		fmt.Sprintf(i18n.T("HUD_LEVEL"), snap.Level),
		fmt.Sprintf(i18n.T("HUD_RANGE"), snap.Player.Range),
		fmt.Sprintf(i18n.T("HUD_BOMBS"), snap.Player.Bombs),
		fmt.Sprintf(i18n.T("HUD_FREEZE"), snap.FreezeSeconds()),
		fmt.Sprintf(i18n.T("HUD_TIME"), snap.TimeSeconds()),
		fmt.Sprintf(i18n.T("HUD_SCORE"), snap.Score),
	}
	dst.DrawTextColor(1, 0, strings.Join(fields, "  "), core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderFooter(dst *core.Screen, snap sim.Snapshot) {
	y := dst.Height() - 1
	parts := []string{g.Title(), fmt.Sprintf(i18n.T("HUD_ZOOM"), snap.Zoom)}
	if snap.Muted {
		parts = append(parts, i18n.T("HUD_MUTED"))
	}
	dst.DrawTextColor(1, y, strings.Join(parts, "  "), core.ColorGray)
}

func renderMap(dst *core.Screen, v view, snap sim.Snapshot) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := core.C(x, y)
			v.fill(dst, c, tileGlyphs[snap.TileAt(c)])
		}
	}
}

func renderActors(dst *core.Screen, v view, snap sim.Snapshot, params sim.Params) {
	for _, p := range snap.PowerUps {
		if p.Visible(params.BlinkThreshold, params.BlinkFrame) {
			v.mark(dst, p.Pos, powerUpGlyphs[p.Kind])
		}
	}

	for _, b := range snap.Bombs {
		g := glyph{'o', core.ColorWhite}
		if b.Fuse < fuseWarning && (b.Fuse/params.BlinkFrame)%2 == 0 {
			g = glyph{'O', core.ColorBrightRed}
		}
		v.mark(dst, b.Pos, g)
	}

	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		g := glyph{'e', core.ColorMagenta}
		if e.Kind == sim.AISmart {
			g = glyph{'E', core.ColorRed}
		}
		if snap.FreezeTicks > 0 {
			g.c = core.ColorCyan
		}
		v.mark(dst, e.Pos, g)
	}

	if snap.Player.Alive {
		v.mark(dst, snap.Player.Pos, glyph{'@', core.ColorBrightGreen})
	} else {
		v.mark(dst, snap.Player.Pos, glyph{'x', core.ColorBrightRed})
	}
}

// renderTexts draws score popups. Their pixel positions are scaled into
// the current tile block size.
func renderTexts(dst *core.Screen, v view, snap sim.Snapshot, params sim.Params) {
	for _, t := range snap.Texts {
		color := core.ColorBrightYellow
		if t.Alpha(params.FloatTextDuration) < 0.5 {
			color = core.ColorYellow
		}
		x := v.offX + t.X*v.cw/v.tileSize + v.cw/2
		y := v.offY + t.Y*v.ch/v.tileSize + v.ch/2
		for i, r := range t.Text {
			v.set(dst, x+i, y, glyph{r, color})
		}
	}
}

// renderOverlay draws a centered banner for the phases that need one.
func renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	var lines []string
	color := core.ColorBrightWhite
	switch snap.Phase() {
	case sim.PhaseCompleted:
		lines = []string{i18n.T("CAMPAIGN_COMPLETE"), fmt.Sprintf(i18n.T("FINAL_SCORE"), snap.Score), i18n.T("RESTART_HINT")}
		color = core.ColorBrightGreen
	case sim.PhaseGameOver:
		lines = []string{i18n.T("GAME_OVER"), fmt.Sprintf(i18n.T("FINAL_SCORE"), snap.Score), i18n.T("RESTART_HINT")}
		color = core.ColorBrightRed
	case sim.PhaseReady:
		lines = []string{i18n.T("PRESS_ANY_KEY"), i18n.T("CONTROLS")}
	case sim.PhaseVictory:
		lines = []string{i18n.T("VICTORY"), i18n.T("NEXT_LEVEL")}
		color = core.ColorBrightYellow
	case sim.PhasePaused:
		lines = []string{i18n.T("PAUSED")}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(width+4, len(lines)*2+1)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l, color)
	}
}
