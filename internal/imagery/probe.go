// Package imagery provides the image collaborators the packager consumes:
// dimension probing, portrait pre-rotation, and sample card synthesis.
package imagery

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Probe returns the pixel dimensions of the image at path without decoding
// the full raster.
func Probe(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
