package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Palette holds one lipgloss style per screen color, bound to a renderer.
// SSH sessions build their own so styles follow the remote terminal's profile.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds a palette for r. A nil renderer uses lipgloss's default.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := make(Palette, len(core.Colors()))
	for _, c := range core.Colors() {
		style := r.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		p[c] = style
	}
	// HUD text and bomb pickups in bold
	p[core.ColorBrightYellow] = p[core.ColorBrightYellow].Bold(true)
	p[core.ColorBrightWhite] = p[core.ColorBrightWhite].Bold(true)
	return p
}

var defaultPalette = NewPalette(nil)

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[color]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
