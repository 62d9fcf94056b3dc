package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/boardwalk/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	flags := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "boardwalk",
		Short: "Play turn-based grid games in the terminal",
		Long: `boardwalk runs turn-based board games on a text grid.

Moves are typed as placements ("X 1,2") or movements ("0,0 1,1"). Any seat
can be handed to an AI agent, and finished games are kept in a match history
stored in memory or Redis.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(flags.EnvFile)
			if err != nil {
				return err
			}
			cfg = loaded
			applyFlags(cmd, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err = factory.New(cfg.FactoryConfig(logger))
			if err != nil {
				return fmt.Errorf("start %s storage: %w", cfg.Storage, err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.Storage, "storage", flags.Storage, "History storage: memory, redis (env: BOARDWALK_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&flags.RedisURL, "redis-url", flags.RedisURL, "Redis URL (env: BOARDWALK_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text, json (env: BOARDWALK_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error (env: BOARDWALK_LOG_LEVEL)")
	rootCmd.PersistentFlags().Uint64Var(&flags.Seed, "seed", flags.Seed, "Seed for agents and secrets, 0 for random (env: BOARDWALK_SEED)")
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", flags.EnvFile, "Optional dotenv file")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}

// applyFlags overrides the loaded config with explicitly set flags
func applyFlags(cmd *cobra.Command, flags *Config) {
	changed := cmd.Flags().Changed
	if changed("storage") {
		cfg.Storage = flags.Storage
	}
	if changed("redis-url") {
		cfg.RedisURL = flags.RedisURL
	}
	if changed("output") {
		cfg.Output = flags.Output
	}
	if changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if changed("seed") {
		cfg.Seed = flags.Seed
	}
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
