package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Glyphs of the serialized board, one per cell
const (
	glyphCovered      = '#'
	glyphCoveredMine  = 'O'
	glyphFlagged      = 'f'
	glyphFlaggedMine  = 'F'
	glyphRevealed     = '.'
	glyphRevealedMine = '*'
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

// Snapshot captures the layout and cover state of the current board
func (game *Game) Snapshot() *BoardSnapshot {
	b := game.board

	var sb strings.Builder
	for row := 0; row < b.field.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.field.cols; col++ {
			sb.WriteByte(cellGlyph(b, Point{row, col}))
		}
	}

	return &BoardSnapshot{
		Seed:            game.config.Seed,
		SerializedBoard: sb.String(),
	}
}

func cellGlyph(b *board, p Point) byte {
	isMine := b.field.IsMine(p.Row, p.Col)

	switch b.coverAt(p) {
	case Revealed:
		if isMine {
			return glyphRevealedMine
		}
		return glyphRevealed
	case Flagged:
		if isMine {
			return glyphFlaggedMine
		}
		return glyphFlagged
	default:
		if isMine {
			return glyphCoveredMine
		}
		return glyphCovered
	}
}

// CreateGame builds a game on the snapshot's minefield. With fresh, every cell
// starts covered; otherwise the snapshot's flags and revealed cells are kept,
// and the game status follows from them.
func (snapshot *BoardSnapshot) CreateGame(config GameConfig, fresh bool) (*Game, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSnapshot)
	}

	numCols := len(rows[0])
	var mines []Point
	for r, line := range rows {
		if len(line) != numCols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSnapshot, r, len(line), numCols)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case glyphCoveredMine, glyphFlaggedMine, glyphRevealedMine:
				mines = append(mines, Point{r, c})
			case glyphCovered, glyphFlagged, glyphRevealed:
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidSnapshot, line[c], r, c)
			}
		}
	}

	field, err := NewMinefield(len(rows), numCols, mines)
	if err != nil {
		return nil, err
	}

	config.Seed = snapshot.Seed
	game, err := NewGameFromMinefield(config, field)
	if err != nil {
		return nil, err
	}
	if fresh {
		return game, nil
	}

	b := game.board
	hitMine := false
	var zeros []Point
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			p := Point{r, c}
			switch line[c] {
			case glyphFlagged, glyphFlaggedMine:
				b.cover[r][c] = Flagged
				b.numFlags++
			case glyphRevealedMine:
				hitMine = true
				b.markRevealed(p)
			case glyphRevealed:
				b.markRevealed(p)
				if field.Value(r, c) == 0 {
					zeros = append(zeros, p)
				}
			}
		}
	}

	if b.numFlags > field.NumMines() {
		return nil, fmt.Errorf("%w: %d flags placed with only %d mines", ErrInvalidSnapshot, b.numFlags, field.NumMines())
	}

	// An empty cell never sits next to a covered one in play. Cascade from
	// each, the same as revealing it would have.
	for _, p := range zeros {
		flood(b, p)
	}

	switch {
	case hitMine:
		b.lose()
	case b.numRevealed == b.numSafeCells():
		b.state = Won
	}

	return game, nil
}
