package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/boardwalk/internal/games"
)

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the available games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(games.List())
			return nil
		},
	}
}
