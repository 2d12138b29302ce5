package random

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/gosweep/director"
	"github.com/they4kman/gosweep/game"
)

func newTestGame(t *testing.T, rows, cols int, mines ...game.Point) *game.Game {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	config := game.NewGameConfig()
	config.Logger = log

	field, err := game.NewMinefield(rows, cols, mines)
	require.NoError(t, err)
	g, err := game.NewGameFromMinefield(config, field)
	require.NoError(t, err)
	return g
}

func TestActRevealsCoveredCell(t *testing.T) {
	g := newTestGame(t, 3, 3, game.Point{Row: 1, Col: 1})
	g.ToggleFlag(1, 1)

	d := New(rand.New(rand.NewSource(1)))
	for i := 0; i < 8; i++ {
		require.True(t, d.Act(g))
	}

	assert.Equal(t, game.Won, g.Status(), "the only unflagged cells are safe")
	assert.Equal(t, game.Flagged, g.CellState(1, 1))
	assert.False(t, d.Act(g))
}

func TestPlay(t *testing.T) {
	g := newTestGame(t, 4, 4)

	moves := director.Play(New(rand.New(rand.NewSource(1))), g)

	assert.Equal(t, 1, moves, "one reveal floods an empty board")
	assert.Equal(t, game.Won, g.Status())
}
