package game

// board is the complete mutable state of one game. A Game swaps whole boards on
// reset, so no caller ever sees a mix of two layouts.
type board struct {
	field *Minefield
	cover [][]CoverState

	state       BoardState
	numFlags    int
	numRevealed int // non-mine cells only
}

func createBoard(field *Minefield) *board {
	b := &board{
		field: field,
		cover: make([][]CoverState, field.rows),
		state: InProgress,
	}
	for row := range b.cover {
		b.cover[row] = make([]CoverState, field.cols)
	}
	return b
}

func (b *board) coverAt(p Point) CoverState {
	return b.cover[p.Row][p.Col]
}

func (b *board) canPlay() bool {
	return b.state == InProgress
}

func (b *board) remainingFlags() int {
	return b.field.NumMines() - b.numFlags
}

func (b *board) numSafeCells() int {
	return b.field.NumCells() - b.field.NumMines()
}

// markRevealed uncovers p and keeps the revealed and flag counters in step.
// It reports whether anything changed.
func (b *board) markRevealed(p Point) bool {
	switch b.coverAt(p) {
	case Revealed:
		return false
	case Flagged:
		b.numFlags--
	}

	b.cover[p.Row][p.Col] = Revealed
	if !b.field.IsMine(p.Row, p.Col) {
		b.numRevealed++
	}
	return true
}

// reveal uncovers a single cell, cascading through empty regions. The caller
// has already checked bounds.
func (b *board) reveal(p Point) {
	if !b.canPlay() || b.coverAt(p) != Covered {
		return
	}

	b.markRevealed(p)

	switch b.field.Value(p.Row, p.Col) {
	case MineValue:
		b.lose()
		return
	case 0:
		flood(b, p)
	}

	if b.numRevealed == b.numSafeCells() {
		b.state = Won
	}
}

func (b *board) lose() {
	b.state = Lost

	// Show the whole layout. A flagged mine gives its flag back, so the budget
	// still accounts for every flag on the board.
	for mine := range b.field.mines {
		b.markRevealed(mine)
	}
}

func (b *board) toggleFlag(p Point) {
	if !b.canPlay() {
		return
	}

	switch b.coverAt(p) {
	case Flagged:
		b.cover[p.Row][p.Col] = Covered
		b.numFlags--
	case Covered:
		if b.remainingFlags() > 0 {
			b.cover[p.Row][p.Col] = Flagged
			b.numFlags++
		}
	}
}

// chord reveals every covered neighbor of a revealed number, once the player
// has flagged as many neighbors as the number says.
func (b *board) chord(p Point) {
	if !b.canPlay() || b.coverAt(p) != Revealed {
		return
	}

	value := b.field.Value(p.Row, p.Col)
	if value <= 0 {
		return
	}

	neighbors := b.field.Neighbors(p)
	numFlagged := 0
	for _, n := range neighbors {
		if b.coverAt(n) == Flagged {
			numFlagged++
		}
	}
	if numFlagged != value {
		return
	}

	for _, n := range neighbors {
		b.reveal(n)
	}
}
