package constraint

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/gosweep/director"
	randomdirector "github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

func testConfig() game.GameConfig {
	log := logrus.New()
	log.SetOutput(io.Discard)

	config := game.NewGameConfig()
	config.Logger = log
	return config
}

func loadGame(t *testing.T, board string) *game.Game {
	t.Helper()

	snapshot := &game.BoardSnapshot{SerializedBoard: board}
	g, err := snapshot.CreateGame(testConfig(), false)
	require.NoError(t, err)
	return g
}

func TestFlagsForcedMine(t *testing.T) {
	g := loadGame(t, "O.##\n..##")
	d := New(nil)

	require.True(t, d.Act(g))
	assert.Equal(t, game.Flagged, g.CellState(0, 0))

	// (0, 1) now has its mine flagged, so the rest of its neighbors are safe
	require.True(t, d.Act(g))
	assert.Equal(t, game.Won, g.Status())

	assert.False(t, d.Act(g))
}

func TestChordsSatisfiedNumber(t *testing.T) {
	g := loadGame(t, "F.##\n####")
	d := New(nil)

	require.True(t, d.Act(g))
	assert.Equal(t, game.Won, g.Status())
	assert.Equal(t, game.Flagged, g.CellState(0, 0))
}

func TestNoDeliberateMove(t *testing.T) {
	g := loadGame(t, "###\n#O#\n###")
	assert.False(t, New(nil).Act(g))

	g = loadGame(t, "###\n#O#\n###")
	d := New(randomdirector.New(rand.New(rand.NewSource(1))))
	require.True(t, d.Act(g), "falls back when nothing can be deduced")
	assert.Equal(t, 1, countRevealed(g))
	assert.Equal(t, 8, countCovered(g))
}

func TestPlayFinishesGames(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	d := New(randomdirector.New(r))

	for i := 0; i < 20; i++ {
		config := testConfig()
		config.Rows, config.Cols, config.NumMines = 9, 9, 10
		config.Rand = r

		g, err := game.NewGame(config)
		require.NoError(t, err)

		moves := director.Play(d, g)
		assert.Positive(t, moves)
		assert.NotEqual(t, game.InProgress, g.Status())
		assert.Equal(t, g.NumMines(), g.RemainingFlags()+g.NumFlagged())
	}
}

func countCovered(g *game.Game) int {
	return count(g, game.Covered)
}

func countRevealed(g *game.Game) int {
	return count(g, game.Revealed)
}

func count(g *game.Game, state game.CoverState) int {
	n := 0
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.CellState(row, col) == state {
				n++
			}
		}
	}
	return n
}
