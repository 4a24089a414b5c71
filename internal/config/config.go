// Package config provides YAML-based configuration loading for the fifteen
// platform: default board size, autosolver pacing, and scoreboard display.
package config

import "fmt"

// Config is the full fifteen configuration file.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Solver     SolverConfig     `yaml:"solver"`
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
}

// BoardConfig selects the default board size for play and solve.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SolverConfig controls the autosolve animation.
type SolverConfig struct {
	// PaceMS is the delay between animated autosolver moves, in
	// milliseconds. 0 applies moves as fast as the tick loop allows.
	PaceMS int `yaml:"pace_ms"`
}

// ScoreboardConfig controls the solve-record display.
type ScoreboardConfig struct {
	// Limit is how many records the scores command and scoreboard show.
	Limit int `yaml:"limit"`
}

// Validate checks the configuration for values the platform cannot run with.
func (c Config) Validate() error {
	if c.Board.Rows < 2 || c.Board.Cols < 2 {
		return fmt.Errorf("config: board %dx%d too small, need at least 2x2", c.Board.Rows, c.Board.Cols)
	}
	if c.Board.Rows > 31 || c.Board.Cols > 31 {
		return fmt.Errorf("config: board %dx%d too large, max 31 per side", c.Board.Rows, c.Board.Cols)
	}
	if c.Solver.PaceMS < 0 {
		return fmt.Errorf("config: negative solver pace %d", c.Solver.PaceMS)
	}
	if c.Scoreboard.Limit <= 0 {
		return fmt.Errorf("config: scoreboard limit must be positive, got %d", c.Scoreboard.Limit)
	}
	return nil
}
