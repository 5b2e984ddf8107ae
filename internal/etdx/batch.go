package etdx

import (
	"fmt"
	"log/slog"
)

// BatchPack splits an ordered image stream into consecutive groups of four
// and packages each group as its own archive, named baseName1, baseName2,
// and so on in group order. The stream length must already be a multiple
// of four; padding a short stream is the caller's job (see stream.Pad).
//
// Packaging is not transactional across units: the first failing unit
// aborts the batch, but archives already produced stay on disk.
func (g *Generator) BatchPack(images []string, outputDir, baseName string) ([]string, error) {
	if len(images)%imagesPerUnit != 0 {
		return nil, &ValidationError{
			Msg: fmt.Sprintf("expected a multiple of 4 images, got %d", len(images)),
		}
	}

	slog.Info("packaging batch", "images", len(images), "units", len(images)/imagesPerUnit, "base_name", baseName)

	archives := make([]string, 0, len(images)/imagesPerUnit)
	for i := 0; i < len(images); i += imagesPerUnit {
		unitName := fmt.Sprintf("%s%d", baseName, i/imagesPerUnit+1)
		archivePath, err := g.Pack(images[i:i+imagesPerUnit], outputDir, unitName)
		if err != nil {
			return nil, err
		}
		archives = append(archives, archivePath)
	}
	return archives, nil
}
