package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMinefield(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, mines int
	}{
		{name: "1x2(1)", rows: 1, cols: 2, mines: 1},
		{name: "3x3(8)", rows: 3, cols: 3, mines: 8},
		{name: "9x9(10)", rows: 9, cols: 9, mines: 10},
		{name: "20x20(40)", rows: 20, cols: 20, mines: 40},
		{name: "16x30(99)", rows: 16, cols: 30, mines: 99},
		{name: "4x4(0)", rows: 4, cols: 4, mines: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				field, err := GenerateMinefield(test.rows, test.cols, test.mines, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)

				mines := field.Mines()
				assert.Equal(t, test.mines, mines.Len())
				assert.Equal(t, test.mines, field.NumMines())

				for mine := range mines {
					assert.True(t, field.InBounds(mine.Row, mine.Col), "mine %v off the board", mine)
					assert.Equal(t, MineValue, field.Value(mine.Row, mine.Col))
				}

				assertValuesMatchMines(t, field)
			}
		})
	}
}

func assertValuesMatchMines(t *testing.T, field *Minefield) {
	t.Helper()

	mines := field.Mines()
	for row := 0; row < field.Rows(); row++ {
		for col := 0; col < field.Cols(); col++ {
			if mines.Contains(Point{row, col}) {
				continue
			}

			expected := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if (dr != 0 || dc != 0) && mines.Contains(Point{row + dr, col + dc}) {
						expected++
					}
				}
			}
			assert.Equal(t, expected, field.Value(row, col), "value of (%d, %d)", row, col)
		}
	}
}

func TestGenerateMinefieldRejectsDuplicates(t *testing.T) {
	r := &scriptedRand{values: []int{
		0, 0,
		0, 0, // duplicate, redrawn
		1, 1,
	}}

	field, err := GenerateMinefield(2, 2, 2, r)
	require.NoError(t, err)

	assert.True(t, field.IsMine(0, 0))
	assert.True(t, field.IsMine(1, 1))
	assert.Equal(t, 2, field.NumMines())
	assert.Empty(t, r.values)
}

func TestGenerateMinefieldInvalid(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, mines int
	}{
		{name: "zero rows", rows: 0, cols: 5, mines: 1},
		{name: "negative cols", rows: 5, cols: -1, mines: 1},
		{name: "negative mines", rows: 5, cols: 5, mines: -1},
		{name: "board full of mines", rows: 3, cols: 3, mines: 9},
		{name: "more mines than cells", rows: 3, cols: 3, mines: 12},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := GenerateMinefield(test.rows, test.cols, test.mines, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestNewMinefield(t *testing.T) {
	field, err := NewMinefield(3, 3, []Point{{1, 1}})
	require.NoError(t, err)

	expected := [][]int{
		{1, 1, 1},
		{1, MineValue, 1},
		{1, 1, 1},
	}
	for row, values := range expected {
		for col, value := range values {
			assert.Equal(t, value, field.Value(row, col), "value of (%d, %d)", row, col)
		}
	}
}

func TestNewMinefieldMinesNeverCounted(t *testing.T) {
	field, err := NewMinefield(2, 3, []Point{{0, 0}, {0, 1}, {1, 0}})
	require.NoError(t, err)

	assert.Equal(t, MineValue, field.Value(0, 0))
	assert.Equal(t, MineValue, field.Value(0, 1))
	assert.Equal(t, MineValue, field.Value(1, 0))
	assert.Equal(t, 3, field.Value(1, 1))
	assert.Equal(t, 1, field.Value(0, 2))
	assert.Equal(t, 1, field.Value(1, 2))
}

func TestNewMinefieldInvalid(t *testing.T) {
	_, err := NewMinefield(3, 3, []Point{{1, 1}, {1, 1}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewMinefield(3, 3, []Point{{3, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewMinefield(1, 1, []Point{{0, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNeighbors(t *testing.T) {
	field, err := NewMinefield(4, 5, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		p        Point
		expected int
	}{
		{name: "top-left corner", p: Point{0, 0}, expected: 3},
		{name: "bottom-right corner", p: Point{3, 4}, expected: 3},
		{name: "top edge", p: Point{0, 2}, expected: 5},
		{name: "left edge", p: Point{2, 0}, expected: 5},
		{name: "interior", p: Point{2, 2}, expected: 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			neighbors := field.Neighbors(test.p)
			assert.Len(t, neighbors, test.expected)

			seen := make(map[Point]bool)
			for _, n := range neighbors {
				assert.True(t, field.InBounds(n.Row, n.Col))
				assert.NotEqual(t, test.p, n)
				assert.LessOrEqual(t, abs(n.Row-test.p.Row), 1)
				assert.LessOrEqual(t, abs(n.Col-test.p.Col), 1)
				assert.False(t, seen[n], "duplicate neighbor %v", n)
				seen[n] = true
			}
		})
	}
}

func TestNeighborsSingleCell(t *testing.T) {
	field, err := NewMinefield(1, 1, nil)
	require.NoError(t, err)
	assert.Empty(t, field.Neighbors(Point{0, 0}))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
