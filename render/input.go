package render

import (
	"github.com/faiface/pixel"

	"github.com/they4kman/gosweep/game"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Click applies a mouse click at pos to g. Once the game is over, any click
// starts a new one. Reports whether the click reached the engine.
func Click(ctx *Context, g *game.Game, pos pixel.Vec, button Button) bool {
	if g.Status() != game.InProgress {
		g.Reset()
		return true
	}

	row, col, ok := ctx.CellAt(pos)
	if !ok {
		return false
	}

	switch button {
	case ButtonLeft:
		g.Reveal(row, col)
	case ButtonRight:
		g.ToggleFlag(row, col)
	case ButtonMiddle:
		g.Chord(row, col)
	default:
		return false
	}
	return true
}
