package core

// RuntimeConfig is passed to games at initialization. Games use it to adapt
// to the screen, to size the board, and for deterministic scrambles.
type RuntimeConfig struct {
	ScreenW  int   // screen width in characters
	ScreenH  int   // screen height in characters
	TickRate int   // simulation ticks per second
	Seed     int64 // scramble seed; 0 means the platform picks one from the clock
	Rows     int   // board rows; 0 means the game's own default
	Cols     int   // board columns; 0 means the game's own default
	PaceMS   int   // delay between autosolver moves, in milliseconds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		PaceMS:   40,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Moves  int  // primitive moves applied so far
	Solved bool // board reached ascending order
	Paused bool
	Auto   bool // the autosolver is driving the board
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
