// Package registry is a global registry of puzzle variants. Each variant
// registers itself in an init() function, so the CLI and TUI discover boards
// without hardcoded dependencies on the game package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tileworks/fifteen/internal/core"
)

// Game is the interface every playable puzzle variant implements. Games hold
// pure logic with no UI dependencies; the platform maps input, drives the
// tick loop, and renders.
type Game interface {
	// ID returns a unique identifier (e.g. "fifteen", "eight"), used for CLI
	// commands and solve-record storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset scrambles a fresh board. The RuntimeConfig provides screen
	// dimensions, the scramble seed, and optional board size overrides.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the frame's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current board into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (moves, solved, paused, auto).
	State() core.GameState
}

// GameInfo is the metadata of a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry, typically from an init()
// function. Panics on a duplicate ID; that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
