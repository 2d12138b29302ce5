package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director"
	"github.com/they4kman/gosweep/director/constraint"
	randomdirector "github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/render"
)

var log = logrus.New()

var gameConfig = game.NewGameConfig()

var (
	useDirector   bool
	verbose       bool
	snapshotPath  string
	snapshotFresh bool
	cellSize      float64
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	gosweep

Use the director flag to make the computer play for you
	gosweep -d

Left click reveals a cell, right click toggles a flag, and middle click
reveals around a number whose mines are all flagged. After a game ends,
click anywhere to start a new one.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}
		gameConfig.Logger = log
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGame()
		if err != nil {
			return err
		}

		var d director.Director
		if useDirector {
			d = newDirector()
		}

		pixelgl.Run(func() {
			if err = runWindow(g, d, render.NewContext(g.Rows(), g.Cols(), cellSize)); err != nil {
				log.WithError(err).Error("Window closed unexpectedly")
			}
		})
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newGame starts from the snapshot given on the command line, if any, or a
// freshly generated board
func newGame() (*game.Game, error) {
	if snapshotPath == "" {
		return game.NewGame(gameConfig)
	}

	in, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, err
	}

	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", snapshotPath, err)
	}

	g, err := snapshot.CreateGame(gameConfig, snapshotFresh)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", snapshotPath, err)
	}
	return g, nil
}

func newDirector() director.Director {
	fallback := randomdirector.New(rand.New(rand.NewSource(gameConfig.Seed)))
	return constraint.New(fallback)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&gameConfig.Rows, "rows", "r", gameConfig.Rows, "Height of game board, in cells")
	flags.IntVarP(&gameConfig.Cols, "cols", "c", gameConfig.Cols, "Width of game board, in cells")
	flags.IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	flags.Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (default: random)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every game event")

	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Start from the board in this YAML snapshot")
	rootCmd.Flags().BoolVar(&snapshotFresh, "fresh", true, "Cover every cell of the loaded snapshot")
	rootCmd.Flags().Float64Var(&cellSize, "cell-size", render.DefaultCellSize, "Size of a cell on screen, in pixels")

	rootCmd.AddCommand(generateCmd, autoplayCmd)
}
