package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kayworks/etdxgen/internal/config"
	"github.com/kayworks/etdxgen/internal/etdx"
	"github.com/kayworks/etdxgen/internal/imagery"
	"github.com/kayworks/etdxgen/internal/stream"
)

func newGenerateCmd() *cobra.Command {
	var (
		inputDir    string
		outputDir   string
		templateDir string
		baseName    string
		configPath  string
		portrait    bool
		noPad       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate .etdx archives from a folder of card images",
		Long: `Collects the PNG images in the input folder in natural order
(front1, back1, front2, back2, ...), pads the stream to a multiple of four
by repeating the last two images, and packages every group of four into
one .etdx archive.

Rasterize card PDFs to PNG at 300 DPI before running generate; page
rasterization itself is out of scope here.`,
		Example: `  # Package a folder of rasters using the bundled base template
  etdxgen generate --input ./pages --output ./out --name kay

  # Portrait-oriented scans, rotated to landscape before packaging
  etdxgen generate --input ./pages --output ./out --portrait`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if templateDir == "" {
				templateDir = cfg.TemplateDir
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}
			if baseName == "" {
				baseName = cfg.BaseName
			}
			if !cmd.Flags().Changed("portrait") {
				portrait = cfg.Orientation == "portrait"
			}
			if inputDir == "" {
				return fmt.Errorf("--input is required")
			}

			return executeGenerate(inputDir, outputDir, templateDir, baseName, portrait, noPad)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Folder containing card PNG images")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Folder to write .etdx archives to")
	cmd.Flags().StringVarP(&templateDir, "template", "t", "", "Extracted base template directory")
	cmd.Flags().StringVarP(&baseName, "name", "n", "", "Base name for archives (kay -> kay1.etdx, kay2.etdx)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "Path to config file")
	cmd.Flags().BoolVar(&portrait, "portrait", false, "Rotate portrait scans to landscape before packaging")
	cmd.Flags().BoolVar(&noPad, "no-pad", false, "Fail instead of padding a stream that is not a multiple of 4")

	return cmd
}

func executeGenerate(inputDir, outputDir, templateDir, baseName string, portrait, noPad bool) error {
	generator, err := etdx.LoadTemplate(templateDir, imagery.Probe)
	if err != nil {
		return err
	}

	images, err := stream.CollectPNGs(inputDir)
	if err != nil {
		return err
	}
	slog.Info("Collected images", "input", inputDir, "count", len(images))

	if !noPad {
		padded, err := stream.Pad(images)
		if err != nil {
			return err
		}
		if len(padded) > len(images) {
			slog.Info("Padded image stream", "added", len(padded)-len(images), "total", len(padded))
		}
		images = padded
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if portrait {
		rotDir := filepath.Join(outputDir, "_rotated")
		defer os.RemoveAll(rotDir)

		images, err = imagery.RotatePortrait(images, rotDir)
		if err != nil {
			return err
		}
	}

	archives, err := generator.BatchPack(images, outputDir, baseName)
	if err != nil {
		return err
	}

	for _, archive := range archives {
		fmt.Println(archive)
	}
	slog.Info("Generation complete", "archives", len(archives))
	return nil
}
