package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Solver: SolverConfig{
			PaceMS: 40,
		},
		Scoreboard: ScoreboardConfig{
			Limit: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for dumping a starter
// config file.
func DefaultYAML() []byte {
	return defaultYAML
}
