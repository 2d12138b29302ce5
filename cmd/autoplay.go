package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director"
	"github.com/they4kman/gosweep/game"
)

var numGames int

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the computer play games without a window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if numGames < 1 {
			return fmt.Errorf("--games must be at least 1, got %d", numGames)
		}

		g, err := game.NewGame(gameConfig)
		if err != nil {
			return err
		}

		results := director.PlaySeries(newDirector(), g, numGames)
		for i, moves := range results.Moves {
			log.WithFields(logrus.Fields{
				"game":   i + 1,
				"moves":  moves,
				"result": results.Outcomes[i],
			}).Debug("Game over")
		}

		log.WithFields(logrus.Fields{
			"games": numGames,
			"won":   results.Won,
			"lost":  results.Lost,
		}).Info("Autoplay finished")

		fmt.Fprintf(cmd.OutOrStdout(), "won %d of %d games\n", results.Won, numGames)
		return nil
	},
}

func init() {
	autoplayCmd.Flags().IntVarP(&numGames, "games", "n", 100, "Number of games to play")
}
