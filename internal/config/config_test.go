package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fifteen.yaml")
	content := []byte("board:\n  rows: 3\n  cols: 5\nsolver:\n  pace_ms: 10\nscoreboard:\n  limit: 5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Rows != 3 || cfg.Board.Cols != 5 {
		t.Errorf("Board = %dx%d, expected 3x5", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Solver.PaceMS != 10 {
		t.Errorf("PaceMS = %d, expected 10", cfg.Solver.PaceMS)
	}
	if cfg.Scoreboard.Limit != 5 {
		t.Errorf("Limit = %d, expected 5", cfg.Scoreboard.Limit)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fifteen.yaml")
	if err := os.WriteFile(path, []byte("board:\n  rows: 1\n  cols: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with a 1x1 board should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"board too small", func(c *Config) { c.Board.Rows = 1 }, true},
		{"board too large", func(c *Config) { c.Board.Cols = 32 }, true},
		{"negative pace", func(c *Config) { c.Solver.PaceMS = -1 }, true},
		{"zero scoreboard limit", func(c *Config) { c.Scoreboard.Limit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", cfg, Default())
	}
}
