// Package config resolves the generator's settings from an optional
// etdxgen.yaml file and ETDXGEN_* environment variables. Command-line
// flags override both.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFile = "etdxgen.yaml"

// Config holds the defaults for the generate and serve commands.
type Config struct {
	TemplateDir string `yaml:"template_dir"`
	OutputDir   string `yaml:"output_dir"`
	BaseName    string `yaml:"base_name"`
	Orientation string `yaml:"orientation"`
	Port        string `yaml:"port"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TemplateDir: "template_base",
		OutputDir:   ".",
		BaseName:    "output",
		Orientation: "landscape",
		Port:        "8888",
	}
}

// Load resolves configuration in precedence order: built-in defaults, then
// the YAML file at path (skipped silently when the default file is
// absent), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultFile:
		// Optional file, fall through to env.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.TemplateDir, "ETDXGEN_TEMPLATE_DIR")
	set(&c.OutputDir, "ETDXGEN_OUTPUT_DIR")
	set(&c.BaseName, "ETDXGEN_BASE_NAME")
	set(&c.Orientation, "ETDXGEN_ORIENTATION")
	set(&c.Port, "ETDXGEN_PORT")
}

func (c *Config) validate() error {
	if c.Orientation != "landscape" && c.Orientation != "portrait" {
		return fmt.Errorf("invalid orientation %q: must be landscape or portrait", c.Orientation)
	}
	return nil
}
