package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/boardwalk/internal/model"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [game]",
		Short: "List finished matches, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var game string
			if len(args) == 1 {
				game = args[0]
			}

			list, err := app.SessionController.History(cmd.Context(), game, limit)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(NewSummaries(list))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum matches to list, 0 for all")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <match-id>",
		Short: "Show a finished match and its final board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.SessionController.Summary(cmd.Context(), model.SummaryID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(NewSummary(summary))
			return nil
		},
	}
}
