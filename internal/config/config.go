// Package config reads and validates the optional vigil config file.
// The file supplies defaults for CLI flags; explicit flags always win.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the YAML config schema.
type File struct {
	// Format is the default report format: html, csv, or json.
	Format string `yaml:"format" validate:"omitempty,oneof=html csv json"`

	// Output is the default report destination path.
	Output string `yaml:"output"`

	// Verbose enables per-check progress and the completion line.
	Verbose bool `yaml:"verbose"`

	// NoColor disables ANSI color on terminal output.
	NoColor bool `yaml:"no_color"`
}

// Load reads and validates a config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return &cfg, nil
}
