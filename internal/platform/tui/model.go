package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
)

// Options customizes the host around a game.
type Options struct {
	// OnReset runs after every (re)start with the runtime config used,
	// so collaborators can pick up the new seed.
	OnReset func(core.RuntimeConfig)

	// ScreenshotDir receives ctrl+s dumps. Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	input     *InputTracker
	gameState core.GameState
	quitting  bool
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		input:  NewInputTracker(HoldWindow),
		now:    time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.reset()
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

func (m *Model) reset() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.input.Release()
	if m.opts.OnReset != nil {
		m.opts.OnReset(m.config)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena has a fixed logical size; only the view is rescaled
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, interrupt := m.keys.MapKey(msg)
	if interrupt {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action, m.now())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.input.Frame(now)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver && !frame.Has(core.ActionQuit) {
		m.config.Seed = time.Now().UnixNano()
		m.reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.opts.ScreenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Quitting reports whether the host is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if err := m.game.Err(); err != nil {
		return fmt.Sprintf("Error: %v\n", err)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
