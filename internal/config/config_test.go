package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 8000 {
		t.Errorf("got Port %d, want 8000", cfg.Port)
	}
	if cfg.MaxRecursion != 1000 {
		t.Errorf("got MaxRecursion %d, want 1000", cfg.MaxRecursion)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "port: 9090\nmaxRecursion: 50\nmodulePaths:\n  - ./lib\n  - ./vendor\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if cfg.Port != 9090 {
		t.Errorf("got Port %d, want 9090", cfg.Port)
	}
	if cfg.MaxRecursion != 50 {
		t.Errorf("got MaxRecursion %d, want 50", cfg.MaxRecursion)
	}
	if len(cfg.ModulePaths) != 2 || cfg.ModulePaths[0] != "./lib" {
		t.Errorf("got ModulePaths %v", cfg.ModulePaths)
	}
}

func TestLoadFillsUnsetFieldsWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("modulePaths:\n  - ./lib\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if cfg.Port != 8000 {
		t.Errorf("got Port %d, want default 8000", cfg.Port)
	}
	if cfg.MaxRecursion != 1000 {
		t.Errorf("got MaxRecursion %d, want default 1000", cfg.MaxRecursion)
	}
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected an IOError")
	}
	if err.Kind != "IOError" {
		t.Errorf("got kind %s, want IOError", err.Kind)
	}
}
