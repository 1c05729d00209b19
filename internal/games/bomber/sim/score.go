package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// award adds points and spawns a floating "+N" above the tile.
func (w *World) award(points int, at core.Coord) {
	if points <= 0 {
		return
	}
	w.state.Score += points
	w.state.Texts = append(w.state.Texts, FloatingText{
		X:         at.X * w.params.TileSize,
		Y:         at.Y * w.params.TileSize,
		Text:      fmt.Sprintf("+%d", points),
		Remaining: w.params.FloatTextDuration,
	})
}

// updateTexts drifts floating texts up one pixel and fades them out.
func (w *World) updateTexts() {
	s := &w.state
	live := s.Texts[:0]
	for _, t := range s.Texts {
		t.Y--
		t.Remaining--
		if t.Remaining > 0 {
			live = append(live, t)
		}
	}
	s.Texts = live
}
