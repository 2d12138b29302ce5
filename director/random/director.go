package random

import (
	"github.com/they4kman/gosweep/game"
)

// Director reveals a random covered cell each turn
type Director struct {
	rand game.Rand
}

func New(r game.Rand) *Director {
	return &Director{rand: r}
}

func (director *Director) Act(g *game.Game) bool {
	if g.Status() != game.InProgress {
		return false
	}

	coveredCells := make([]game.Point, 0, g.Rows()*g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.CellState(row, col) == game.Covered {
				coveredCells = append(coveredCells, game.Point{Row: row, Col: col})
			}
		}
	}
	if len(coveredCells) == 0 {
		return false
	}

	cell := coveredCells[director.rand.Intn(len(coveredCells))]
	g.Reveal(cell.Row, cell.Col)
	return true
}
