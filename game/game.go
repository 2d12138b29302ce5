package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Rows, Cols int
	NumMines   int

	// Seed for mine placement. Ignored when Rand is set.
	Seed int64
	// Rand overrides the source of mine placement
	Rand Rand

	Logger logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:     defaultRows,
		Cols:     defaultCols,
		NumMines: defaultNumMines,
		Seed:     time.Now().UnixNano(),
	}
}

// Game is a single-player Minesweeper game. It is not safe for concurrent use:
// the caller issues one operation at a time and reads state in between.
type Game struct {
	config GameConfig
	rand   Rand
	log    logrus.FieldLogger

	board *board
}

// NewGame creates a game with a freshly generated minefield
func NewGame(config GameConfig) (*Game, error) {
	game := newGame(config)

	field, err := GenerateMinefield(config.Rows, config.Cols, config.NumMines, game.rand)
	if err != nil {
		return nil, err
	}
	game.start(field)

	return game, nil
}

// NewGameFromMinefield creates a game played on a fixed minefield. Reset
// generates random minefields of the same size.
func NewGameFromMinefield(config GameConfig, field *Minefield) (*Game, error) {
	if field == nil {
		return nil, fmt.Errorf("%w: no minefield", ErrInvalidConfiguration)
	}
	if err := validateDimensions(field.Rows(), field.Cols(), field.NumMines()); err != nil {
		return nil, err
	}
	config.Rows, config.Cols, config.NumMines = field.Rows(), field.Cols(), field.NumMines()

	game := newGame(config)
	game.start(field)
	return game, nil
}

func newGame(config GameConfig) *Game {
	game := &Game{
		config: config,
		rand:   config.Rand,
		log:    config.Logger,
	}
	if game.rand == nil {
		game.rand = rand.New(rand.NewSource(config.Seed))
	}
	if game.log == nil {
		game.log = logrus.StandardLogger()
	}
	game.log = game.log.WithFields(logrus.Fields{
		"rows":  config.Rows,
		"cols":  config.Cols,
		"mines": config.NumMines,
	})
	return game
}

func (game *Game) start(field *Minefield) {
	game.board = createBoard(field)
	game.log.Debug("New game")
}

// Reset starts over on a newly generated minefield of the same size
func (game *Game) Reset() {
	field, err := GenerateMinefield(game.config.Rows, game.config.Cols, game.config.NumMines, game.rand)
	if err != nil {
		// The dimensions were validated when the game was created
		panic(err)
	}
	game.start(field)
}

// Reveal uncovers the cell at (row, col). Flagged or revealed cells,
// coordinates off the board, and finished games are ignored.
func (game *Game) Reveal(row, col int) {
	if !game.InBounds(row, col) {
		return
	}

	before := game.board.state
	game.board.reveal(Point{row, col})
	game.logOutcome(before, row, col)
}

// ToggleFlag flags a covered cell, or unflags a flagged one. A cell can only be
// flagged while flags remain.
func (game *Game) ToggleFlag(row, col int) {
	if !game.InBounds(row, col) {
		return
	}
	game.board.toggleFlag(Point{row, col})
}

// Chord reveals the covered neighbors of a revealed number whose mines have all
// been flagged. If a flag is wrong, this can lose the game.
func (game *Game) Chord(row, col int) {
	if !game.InBounds(row, col) {
		return
	}

	before := game.board.state
	game.board.chord(Point{row, col})
	game.logOutcome(before, row, col)
}

func (game *Game) logOutcome(before BoardState, row, col int) {
	after := game.board.state
	if before == after {
		return
	}

	log := game.log.WithFields(logrus.Fields{"row": row, "col": col})
	switch after {
	case Lost:
		log.Info("Revealed a mine; game lost")
	case Won:
		log.Info("All safe cells revealed; game won")
	}
}

func (game *Game) Rows() int {
	return game.board.field.Rows()
}

func (game *Game) Cols() int {
	return game.board.field.Cols()
}

func (game *Game) NumMines() int {
	return game.board.field.NumMines()
}

func (game *Game) InBounds(row, col int) bool {
	return game.board.field.InBounds(row, col)
}

func (game *Game) Neighbors(row, col int) []Point {
	if !game.InBounds(row, col) {
		return nil
	}
	return game.board.field.Neighbors(Point{row, col})
}

func (game *Game) Status() BoardState {
	return game.board.state
}

func (game *Game) RemainingFlags() int {
	return game.board.remainingFlags()
}

func (game *Game) NumFlagged() int {
	return game.board.numFlags
}

// CellState returns the cover state of a cell. Cells off the board read as
// Covered.
func (game *Game) CellState(row, col int) CoverState {
	if !game.InBounds(row, col) {
		return Covered
	}
	return game.board.coverAt(Point{row, col})
}

// CellValue returns the value of a cell, if the player is allowed to see it:
// the cell is revealed, or the game is over.
func (game *Game) CellValue(row, col int) (int, bool) {
	if !game.InBounds(row, col) {
		return 0, false
	}
	if game.board.canPlay() && game.board.coverAt(Point{row, col}) != Revealed {
		return 0, false
	}
	return game.board.field.Value(row, col), true
}
