package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Default file absent: built-in defaults apply.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})

	cfg, err := Load(DefaultFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseName != "output" {
		t.Errorf("Expected default base name output, got %s", cfg.BaseName)
	}
	if cfg.Orientation != "landscape" {
		t.Errorf("Expected default orientation landscape, got %s", cfg.Orientation)
	}
	if cfg.Port != "8888" {
		t.Errorf("Expected default port 8888, got %s", cfg.Port)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etdxgen.yaml")
	contents := `template_dir: /opt/templates/card
output_dir: /srv/out
base_name: kay
orientation: portrait
port: "9000"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TemplateDir != "/opt/templates/card" {
		t.Errorf("Expected template dir from file, got %s", cfg.TemplateDir)
	}
	if cfg.BaseName != "kay" {
		t.Errorf("Expected base name kay, got %s", cfg.BaseName)
	}
	if cfg.Orientation != "portrait" {
		t.Errorf("Expected orientation portrait, got %s", cfg.Orientation)
	}
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etdxgen.yaml")
	if err := os.WriteFile(path, []byte("base_name: fromfile\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("ETDXGEN_BASE_NAME", "fromenv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseName != "fromenv" {
		t.Errorf("Expected env to override file, got %s", cfg.BaseName)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "malformed yaml", contents: "base_name: [unclosed\n"},
		{name: "invalid orientation", contents: "orientation: sideways\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "etdxgen.yaml")
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for explicit missing config path, got nil")
	}
}
