package imagery

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// RotatePortrait writes 90° counter-clockwise rotated copies of the given
// images into workDir (created if needed) and returns their paths in input
// order. Portrait-oriented card scans are rotated up front so the packager
// always stages landscape rasters; the caller owns workDir and its
// cleanup.
func RotatePortrait(paths []string, workDir string) ([]string, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create rotation directory: %w", err)
	}

	rotated := make([]string, 0, len(paths))
	for _, path := range paths {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		out := filepath.Join(workDir, filepath.Base(path))
		if err := imaging.Save(imaging.Rotate90(img), out); err != nil {
			return nil, fmt.Errorf("failed to save rotated %s: %w", path, err)
		}
		rotated = append(rotated, out)
	}

	slog.Debug("rotated images for portrait layout", "count", len(rotated), "dir", workDir)
	return rotated, nil
}
