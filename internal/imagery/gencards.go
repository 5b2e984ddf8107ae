package imagery

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Sample card dimensions match the packager's target: 86mm x 54mm at 300 DPI.
const (
	sampleWidth  = 1016
	sampleHeight = 638
)

// Front and back faces get distinct fills so the two sides of a card are
// easy to tell apart when proofing a generated template.
var sampleFills = []color.NRGBA{
	{R: 0xdc, G: 0xe6, B: 0xf5, A: 0xff}, // front: light blue
	{R: 0xf5, G: 0xe6, B: 0xdc, A: 0xff}, // back: light orange
}

// GenerateSampleCards writes count card-sized PNGs into outputDir, named
// card_1.png through card_N.png, alternating front/back fills in the
// stream order the packager expects (front1, back1, front2, back2, ...).
// It returns the written paths in order.
func GenerateSampleCards(outputDir string, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		card := drawSampleCard(sampleFills[i%2])
		path := filepath.Join(outputDir, fmt.Sprintf("card_%d.png", i+1))
		if err := imaging.Save(card, path); err != nil {
			return nil, fmt.Errorf("failed to save sample card: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// drawSampleCard renders one card face: a solid fill with a dark border
// inset and a centered accent block, enough texture to confirm placement
// and orientation in the consuming software.
func drawSampleCard(fill color.NRGBA) image.Image {
	card := imaging.New(sampleWidth, sampleHeight, fill)

	const border = 12
	frame := imaging.New(sampleWidth-2*border, sampleHeight-2*border, fill)
	edge := imaging.New(sampleWidth-2*border+4, sampleHeight-2*border+4, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	card = imaging.Paste(card, edge, image.Pt(border-2, border-2))
	card = imaging.Paste(card, frame, image.Pt(border, border))

	accent := imaging.New(sampleWidth/3, sampleHeight/5, color.NRGBA{R: 0x4a, G: 0x6f, B: 0xa5, A: 0xff})
	card = imaging.Paste(card, accent, image.Pt(sampleWidth/3, sampleHeight/5))

	return card
}
