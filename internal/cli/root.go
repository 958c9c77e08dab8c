package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordgrid/internal/factory"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordgrid",
		Short: "Play and check moves on an 11x11 word grid",
		Long: `wordgrid validates and scores tile placements on a word grid board.

It can print board layouts, query the word list, and run a local game
read line by line from standard input.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.DictionaryPath, "dictionary", cfg.DictionaryPath, "Word list path, one word per line (env: WORDGRID_DICTIONARY)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis (env: WORDGRID_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: WORDGRID_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newDictCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// newApp wires the application from the CLI config
func newApp(ctx context.Context) (*factory.App, error) {
	return factory.New(ctx, cfg.FactoryConfig(logger))
}

// Execute runs the root command
func Execute() {
	if err := loadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %s\n", err)
	}
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
