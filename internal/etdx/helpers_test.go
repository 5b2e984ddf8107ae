package etdx

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeBaseTemplate lays out a minimal extracted base template and returns
// its directory.
func writeBaseTemplate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	projectInfo := `{"appVersion":"1.0.0","paperKind":"card"}`
	if err := os.WriteFile(filepath.Join(dir, "projectinfo.json"), []byte(projectInfo), 0644); err != nil {
		t.Fatalf("Failed to write projectinfo.json: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "BaseData"), 0755); err != nil {
		t.Fatalf("Failed to create BaseData: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "BaseData", "layout.dat"), []byte("base-data"), 0644); err != nil {
		t.Fatalf("Failed to write BaseData file: %v", err)
	}

	pageDir := filepath.Join(dir, "0F9C2A41-TEMPLATE-PAGE")
	if err := os.MkdirAll(pageDir, 0755); err != nil {
		t.Fatalf("Failed to create page dir: %v", err)
	}
	skeleton := `{"pageNo":1,"editedPaperSize":{"paperID":"card-86x54","width":1016,"height":638,"photos":[{"imagePath":"stale/old.png"}]}}`
	if err := os.WriteFile(filepath.Join(pageDir, "_info.json"), []byte(skeleton), 0644); err != nil {
		t.Fatalf("Failed to write page skeleton: %v", err)
	}

	return dir
}

// writePNG writes a solid PNG of the given size and returns its path.
func writePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})

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

// probeFiles is a Prober backed by the real decoder; tests use it so Pack
// exercises the same probe path production does.
func probeFiles(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

func loadTestGenerator(t *testing.T) *Generator {
	t.Helper()

	gen, err := LoadTemplate(writeBaseTemplate(t), probeFiles)
	if err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}
	return gen
}
