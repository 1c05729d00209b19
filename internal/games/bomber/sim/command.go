package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// CommandKind enumerates the inputs a World understands.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdStart
	CmdMove
	CmdBomb
	CmdPause
	CmdMute
	CmdZoomIn
	CmdZoomOut
	CmdZoomBy
	CmdReset
	CmdAdvance
)

// Command is one discrete input applied at the start of a tick.
type Command struct {
	Kind  CommandKind
	Dir   core.Dir // CmdMove
	Steps int      // CmdZoomBy: positive zooms in, negative zooms out
}

// Commands without arguments.
var (
	None      = Command{Kind: CmdNone}
	Start     = Command{Kind: CmdStart}
	PlaceBomb = Command{Kind: CmdBomb}
	Pause     = Command{Kind: CmdPause}
	Mute      = Command{Kind: CmdMute}
	ZoomIn    = Command{Kind: CmdZoomIn}
	ZoomOut   = Command{Kind: CmdZoomOut}
	Reset     = Command{Kind: CmdReset}
	Advance   = Command{Kind: CmdAdvance}
)

// Move returns a command stepping the player one tile towards d.
func Move(d core.Dir) Command {
	return Command{Kind: CmdMove, Dir: d}
}

// ZoomBy returns a command scaling the zoom by ZoomFactor^steps.
func ZoomBy(steps int) Command {
	return Command{Kind: CmdZoomBy, Steps: steps}
}

// String returns a short description used in logs.
func (c Command) String() string {
	switch c.Kind {
	case CmdNone:
		return "none"
	case CmdStart:
		return "start"
	case CmdMove:
		return "move " + c.Dir.String()
	case CmdBomb:
		return "bomb"
	case CmdPause:
		return "pause"
	case CmdMute:
		return "mute"
	case CmdZoomIn:
		return "zoom in"
	case CmdZoomOut:
		return "zoom out"
	case CmdZoomBy:
		return fmt.Sprintf("zoom by %d", c.Steps)
	case CmdReset:
		return "reset"
	case CmdAdvance:
		return "advance"
	default:
		return "unknown"
	}
}
