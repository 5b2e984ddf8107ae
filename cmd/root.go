package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "etdxgen",
		Short: "Package ID card images into Epson Photo+ .etdx templates",
		Long: `etdxgen turns page rasters of ID cards into .etdx template archives
consumable by Epson Photo+ for double-sided card printing.

Each archive holds two pages (card fronts and card backs) with two stacked
cards per page, so every four input images yield one archive.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			logLevel := slog.LevelInfo
			if verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newGencardsCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
