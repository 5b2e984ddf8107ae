package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kayworks/etdxgen/internal/imagery"
)

func newGencardsCmd() *cobra.Command {
	var outputDir string
	var count int

	cmd := &cobra.Command{
		Use:   "gencards",
		Short: "Synthesize sample card PNGs for manual testing",
		Long: `Writes card-sized (1016x638) sample PNGs alternating front and back
fills, in the stream order generate expects. Useful for proofing a base
template without rasterizing a real PDF.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := imagery.GenerateSampleCards(outputDir, count)
			if err != nil {
				return err
			}
			slog.Info("Sample cards written", "dir", outputDir, "count", len(paths))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Folder to write sample cards to")
	cmd.Flags().IntVarP(&count, "count", "c", 8, "Number of card faces to generate")

	return cmd
}
