package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/boardwalk/internal/model"
	"github.com/mcoot/boardwalk/internal/services/agent"
	"github.com/mcoot/boardwalk/internal/services/session"
)

func newPlayCmd() *cobra.Command {
	var (
		ai         map[string]string
		layoutFile string
	)

	cmd := &cobra.Command{
		Use:   "play <game>",
		Short: "Play a game in the terminal",
		Example: `  boardwalk play tictactoe --ai 1=random
  boardwalk play sudoku --layout puzzle.txt
  boardwalk play mastermind`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agents, err := parseAgents(ai)
			if err != nil {
				return err
			}

			var layout string
			if layoutFile != "" {
				data, err := os.ReadFile(layoutFile)
				if err != nil {
					return fmt.Errorf("read layout: %w", err)
				}
				layout = string(data)
			}

			// JSON output keeps stdout machine-readable, so the game itself goes to stderr
			transcript := cmd.OutOrStdout()
			if cfg.Output == FormatJSON {
				transcript = cmd.ErrOrStderr()
			}

			summary, err := app.SessionController.Play(cmd.Context(), session.PlayRequest{
				Game:   args[0],
				Layout: layout,
				Agents: agents,
				In:     cmd.InOrStdin(),
				Out:    transcript,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if cfg.Output == FormatJSON {
				out.Print(NewSummary(summary))
			} else {
				out.PrintMessage(fmt.Sprintf("Recorded match %s", summary.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&ai, "ai", nil, "Hand a seat to an agent, e.g. 1=random (strategies: "+strategyHelp()+")")
	cmd.Flags().StringVar(&layoutFile, "layout", "", "File with a starting board, for games that accept one")

	return cmd
}

// strategyHelp lists the agent strategies with their display names
func strategyHelp() string {
	names := agent.Strategies()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s = %s", name, agent.DisplayName(name)))
	}
	return strings.Join(parts, ", ")
}

// parseAgents turns seat=strategy pairs into a seat map
func parseAgents(pairs map[string]string) (map[model.PlayerID]string, error) {
	agents := make(map[model.PlayerID]string, len(pairs))
	for seat, strategy := range pairs {
		n, err := strconv.Atoi(seat)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a player number", model.ErrInvalidSeat, seat)
		}
		agents[model.PlayerID(n)] = strategy
	}
	return agents, nil
}
