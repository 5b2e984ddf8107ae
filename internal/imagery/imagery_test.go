package imagery

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return path
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "card.png", 1016, 638)

	width, height, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if width != 1016 || height != 638 {
		t.Errorf("Expected 1016x638, got %dx%d", width, height)
	}
}

func TestProbeErrors(t *testing.T) {
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}
	if _, _, err := Probe(corrupt); err == nil {
		t.Error("Expected error for corrupt image, got nil")
	}

	if _, _, err := Probe(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestRotatePortrait(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePNG(t, dir, "p1.png", 638, 1016),
		writePNG(t, dir, "p2.png", 638, 1016),
	}

	workDir := filepath.Join(t.TempDir(), "rotated")
	rotated, err := RotatePortrait(paths, workDir)
	if err != nil {
		t.Fatalf("RotatePortrait failed: %v", err)
	}

	if len(rotated) != 2 {
		t.Fatalf("Expected 2 rotated images, got %d", len(rotated))
	}
	for i, path := range rotated {
		if filepath.Base(path) != filepath.Base(paths[i]) {
			t.Errorf("Expected rotated copy to keep filename %s, got %s", filepath.Base(paths[i]), path)
		}
		width, height, err := Probe(path)
		if err != nil {
			t.Fatalf("Probe of rotated image failed: %v", err)
		}
		if width != 1016 || height != 638 {
			t.Errorf("Expected rotated size 1016x638, got %dx%d", width, height)
		}
	}
}

func TestRotatePortraitUnreadable(t *testing.T) {
	if _, err := RotatePortrait([]string{"/nonexistent.png"}, t.TempDir()); err == nil {
		t.Error("Expected error for unreadable image, got nil")
	}
}

func TestGenerateSampleCards(t *testing.T) {
	outDir := t.TempDir()

	paths, err := GenerateSampleCards(outDir, 4)
	if err != nil {
		t.Fatalf("GenerateSampleCards failed: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("Expected 4 cards, got %d", len(paths))
	}

	for i, path := range paths {
		expected := fmt.Sprintf("card_%d.png", i+1)
		if filepath.Base(path) != expected {
			t.Errorf("Expected card name %s, got %s", expected, filepath.Base(path))
		}
		width, height, err := Probe(path)
		if err != nil {
			t.Fatalf("Probe of sample card failed: %v", err)
		}
		if width != 1016 || height != 638 {
			t.Errorf("Expected card size 1016x638, got %dx%d", width, height)
		}
	}
}

func TestGenerateSampleCardsInvalidCount(t *testing.T) {
	if _, err := GenerateSampleCards(t.TempDir(), 0); err == nil {
		t.Error("Expected error for zero count, got nil")
	}
}
