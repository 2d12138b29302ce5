package constraint

import (
	"github.com/they4kman/gosweep/director"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

// Director makes the moves that follow from a single revealed number: when
// all of a number's mines are flagged, its other neighbors are safe; when its
// hidden neighbors are exactly its mines, they all get flagged. With no such
// move on the board, it defers to Fallback.
type Director struct {
	Fallback director.Director
}

func New(fallback director.Director) *Director {
	return &Director{Fallback: fallback}
}

type observation struct {
	numMines int
	covered  collections.Set[game.Point]
	flagged  collections.Set[game.Point]
}

func (director *Director) Act(g *game.Game) bool {
	if g.Status() != game.InProgress {
		return false
	}

	if director.actDeliberate(g) {
		return true
	}

	if director.Fallback == nil {
		return false
	}
	return director.Fallback.Act(g)
}

func (director *Director) actDeliberate(g *game.Game) bool {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			obs, ok := observe(g, row, col)
			if !ok || obs.covered.Len() == 0 {
				continue
			}

			switch {
			case obs.flagged.Len() == obs.numMines:
				g.Chord(row, col)
				return true
			case obs.flagged.Len()+obs.covered.Len() == obs.numMines:
				flagsBefore := g.NumFlagged()
				for cell := range obs.covered {
					g.ToggleFlag(cell.Row, cell.Col)
				}
				if g.NumFlagged() != flagsBefore {
					return true
				}
			}
		}
	}
	return false
}

// observe collects what the revealed number at (row, col) says about its
// neighbors
func observe(g *game.Game, row, col int) (observation, bool) {
	if g.CellState(row, col) != game.Revealed {
		return observation{}, false
	}
	value, ok := g.CellValue(row, col)
	if !ok || value <= 0 {
		return observation{}, false
	}

	hidden := make(collections.Set[game.Point])
	flagged := make(collections.Set[game.Point])
	for _, n := range g.Neighbors(row, col) {
		switch g.CellState(n.Row, n.Col) {
		case game.Flagged:
			flagged.Add(n)
			hidden.Add(n)
		case game.Covered:
			hidden.Add(n)
		}
	}

	return observation{
		numMines: value,
		covered:  hidden.Difference(flagged),
		flagged:  flagged,
	}, true
}
