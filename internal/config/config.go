// Package config loads the Language's process-level settings: the HTTP
// adapter's listen port, extra module search directories, and an
// override for the recursion-depth cap. New relative to the teacher (a
// file-driven compiler/interpreter has no equivalent of a long-lived
// server's config file) but written using goccy/go-yaml, the YAML
// library the pack already carries (go-dws's go.mod lists it as an
// indirect dependency pulled in by go-snaps) rather than reaching for
// encoding/json or a bespoke flag-only setup.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/badrhassa/exo/internal/ierrors"
)

// Config holds the settings a YAML file passed with `serve --config` may
// override; no config file is read unless that flag names one.
type Config struct {
	Port         int      `yaml:"port"`
	ModulePaths  []string `yaml:"modulePaths"`
	MaxRecursion int      `yaml:"maxRecursion"`
}

// Default returns the zero-config values the CLI falls back to.
func Default() *Config {
	return &Config{
		Port:         8000,
		MaxRecursion: 1000,
	}
}

// Load reads and parses a YAML config file, filling in defaults for any
// field the file leaves unset.
func Load(path string) (*Config, *ierrors.Error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.New(ierrors.IOError, "config: %v", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ierrors.New(ierrors.SyntaxError, "config: %v", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if cfg.MaxRecursion == 0 {
		cfg.MaxRecursion = 1000
	}
	return cfg, nil
}
