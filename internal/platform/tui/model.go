package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tileworks/fifteen/internal/core"
	"github.com/tileworks/fifteen/internal/registry"
	"github.com/tileworks/fifteen/internal/storage"
)

// boardMeta is implemented by games that expose their board geometry and
// autosolver involvement, so solve records carry the full deal context.
type boardMeta interface {
	Rows() int
	Cols() int
	SolvedByAuto() bool
}

// Model is the Bubble Tea model for playing a puzzle board.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      uint64
	dealStart  uint64 // tick at which the current deal began
	quitting   bool
	backToMenu bool
	solveSaved bool // whether the current deal's solve has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B backs out to the menu while paused or after a solve.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.Solved || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Re-deal from the same seed with the new dimensions. Progress in the
	// current deal is lost, same as restarting it.
	if !m.gameState.Solved {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the solve once per deal
	if m.gameState.Solved && !m.solveSaved {
		m.saveSolve()
		m.solveSaved = true
	}

	// A shuffle or restart starts a fresh deal
	if !m.gameState.Solved && m.solveSaved {
		m.solveSaved = false
	}
	if !m.gameState.Solved && m.gameState.Moves == 0 {
		m.dealStart = m.ticks
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveSolve persists the finished deal to the solves database.
func (m *Model) saveSolve() {
	if m.store == nil {
		return
	}

	rec := storage.SolveRecord{
		PuzzleID: m.game.ID(),
		Moves:    m.gameState.Moves,
		SolvedBy: storage.SolvedByHuman,
	}
	if m.config.TickRate > 0 {
		rec.DurationMS = int64(m.ticks-m.dealStart) * 1000 / int64(m.config.TickRate)
	}
	if g, ok := m.game.(boardMeta); ok {
		rec.Rows = g.Rows()
		rec.Cols = g.Cols()
		if g.SolvedByAuto() {
			rec.SolvedBy = storage.SolvedByAuto
		}
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveSolve(rec)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".fifteen", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
