// Package config reads the optional .quotefix.yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory.
const FileName = ".quotefix.yaml"

// DefaultTarget is the file rewritten when nothing else is configured.
const DefaultTarget = "src/App.tsx"

// Config holds the resolved settings.
type Config struct {
	Target string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Target: DefaultTarget}
}

type yamlConfig struct {
	Target string `yaml:"target"`
}

// Load reads FileName from dir and applies it on top of the defaults.
// A missing file is not an error.
func Load(dir string) (Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads an explicitly named config file. Unlike Load, the file must exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if y.Target != "" {
		cfg.Target = y.Target
	}
	return cfg, nil
}
