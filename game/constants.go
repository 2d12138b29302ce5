package game

type CoverState int
type BoardState int

const (
	Covered CoverState = iota
	Flagged
	Revealed
)

func (state CoverState) String() string {
	switch state {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

const (
	InProgress BoardState = iota
	Lost
	Won
)

func (state BoardState) String() string {
	switch state {
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// MineValue is the cell value of a mine. Every other cell holds the number of
// mines among its neighbors, 0 through 8.
const MineValue = -1

const (
	defaultRows     = 20
	defaultCols     = 20
	defaultNumMines = 40
)
