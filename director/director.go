package director

import "github.com/they4kman/gosweep/game"

// Director plays a game through the same operations a human player uses
type Director interface {
	// Act performs a single move, and reports whether it made one
	Act(g *game.Game) bool
}

// Play has d act until the game ends or d runs out of moves, and returns the
// number of moves made.
func Play(d Director, g *game.Game) int {
	moves := 0
	for g.Status() == game.InProgress && d.Act(g) {
		moves++
	}
	return moves
}

type Results struct {
	Won, Lost int
	// Moves made in each game, in order
	Moves []int
	// Outcome of each game, in order
	Outcomes []game.BoardState
}

// PlaySeries has d play numGames games on g, resetting g between games
func PlaySeries(d Director, g *game.Game, numGames int) Results {
	var results Results

	for i := 0; i < numGames; i++ {
		if i > 0 {
			g.Reset()
		}

		moves := Play(d, g)
		results.Moves = append(results.Moves, moves)
		results.Outcomes = append(results.Outcomes, g.Status())

		switch g.Status() {
		case game.Won:
			results.Won++
		case game.Lost:
			results.Lost++
		}
	}

	return results
}
