package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/game"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a newly generated board as a YAML snapshot",
	Long: `Generate a board with the configured size and mine count, and print it
as a YAML snapshot. The output can be passed back with --snapshot.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := game.NewGame(gameConfig)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), g.Snapshot().Serialize())
		return nil
	},
}
