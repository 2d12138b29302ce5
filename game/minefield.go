package game

import (
	"fmt"

	"github.com/they4kman/gosweep/util/collections"
)

// Rand is the source of randomness used to place mines. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Minefield is the immutable layout of a board: where the mines are, and the
// value of every cell.
type Minefield struct {
	rows, cols int
	values     [][]int
	mines      collections.Set[Point]
}

func (field *Minefield) Rows() int {
	return field.rows
}

func (field *Minefield) Cols() int {
	return field.cols
}

func (field *Minefield) NumMines() int {
	return field.mines.Len()
}

func (field *Minefield) NumCells() int {
	return field.rows * field.cols
}

func (field *Minefield) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < field.rows && col < field.cols
}

// Value returns the cell value at (row, col), or MineValue for a mine. The
// coordinate must be in bounds.
func (field *Minefield) Value(row, col int) int {
	return field.values[row][col]
}

func (field *Minefield) IsMine(row, col int) bool {
	return field.mines.Contains(Point{row, col})
}

// Mines returns a copy of the mine positions
func (field *Minefield) Mines() collections.Set[Point] {
	return field.mines.Clone()
}

// Neighbors returns the up-to-8 in-bounds cells surrounding p
func (field *Minefield) Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, 8)

	isAtTopBorder := p.Row < 1
	isAtBottomBorder := p.Row >= field.rows-1

	if p.Col >= 1 {
		neighbors = append(neighbors, Point{p.Row, p.Col - 1})

		if !isAtTopBorder {
			neighbors = append(neighbors, Point{p.Row - 1, p.Col - 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Point{p.Row + 1, p.Col - 1})
		}
	}

	if p.Col < field.cols-1 {
		neighbors = append(neighbors, Point{p.Row, p.Col + 1})

		if !isAtTopBorder {
			neighbors = append(neighbors, Point{p.Row - 1, p.Col + 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Point{p.Row + 1, p.Col + 1})
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, Point{p.Row - 1, p.Col})
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, Point{p.Row + 1, p.Col})
	}

	return neighbors
}

func validateDimensions(rows, cols, numMines int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	if numMines < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidConfiguration, numMines)
	}
	if numMines >= rows*cols {
		return fmt.Errorf("%w: %d mines do not fit on a %dx%d board", ErrInvalidConfiguration, numMines, rows, cols)
	}
	return nil
}

// GenerateMinefield places numMines mines uniformly at random on a rows x cols
// board. Duplicate draws are rejected and redrawn, so the number of draws grows
// sharply as numMines approaches rows*cols.
func GenerateMinefield(rows, cols, numMines int, r Rand) (*Minefield, error) {
	if err := validateDimensions(rows, cols, numMines); err != nil {
		return nil, err
	}

	mines := make(collections.Set[Point], numMines)
	for mines.Len() < numMines {
		p := Point{r.Intn(rows), r.Intn(cols)}
		if mines.Contains(p) {
			continue
		}
		mines.Add(p)
	}

	return fillMinefield(rows, cols, mines), nil
}

// NewMinefield builds a minefield with mines at exactly the given positions
func NewMinefield(rows, cols int, mines []Point) (*Minefield, error) {
	if err := validateDimensions(rows, cols, len(mines)); err != nil {
		return nil, err
	}

	mineSet := make(collections.Set[Point], len(mines))
	for _, p := range mines {
		if p.Row < 0 || p.Col < 0 || p.Row >= rows || p.Col >= cols {
			return nil, fmt.Errorf("%w: mine %v is outside the %dx%d board", ErrInvalidConfiguration, p, rows, cols)
		}
		if mineSet.Contains(p) {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidConfiguration, p)
		}
		mineSet.Add(p)
	}

	return fillMinefield(rows, cols, mineSet), nil
}

func fillMinefield(rows, cols int, mines collections.Set[Point]) *Minefield {
	field := &Minefield{
		rows:   rows,
		cols:   cols,
		values: make([][]int, rows),
		mines:  mines,
	}
	for row := range field.values {
		field.values[row] = make([]int, cols)
	}

	for mine := range mines {
		field.values[mine.Row][mine.Col] = MineValue
	}

	for mine := range mines {
		for _, n := range field.Neighbors(mine) {
			if field.values[n.Row][n.Col] != MineValue {
				field.values[n.Row][n.Col]++
			}
		}
	}

	return field
}
