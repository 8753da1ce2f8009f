package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

func newTestModel(t *testing.T, resets *[]int64) (Model, *starcatch.Game) {
	t.Helper()
	cfg := config.Default()
	cfg.Enemies.Count = 0
	cfg.Stars.Count = 0
	game := starcatch.NewWithConfig(cfg)

	opts := Options{
		OnReset: func(rc core.RuntimeConfig) {
			if resets != nil {
				*resets = append(*resets, rc.Seed)
			}
		},
	}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, opts)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelInitResetsGame(t *testing.T) {
	var resets []int64
	_, game := newTestModel(t, &resets)

	if len(resets) != 1 || resets[0] != 42 {
		t.Errorf("OnReset seeds = %v, expected [42]", resets)
	}
	if _, ok := game.Store().Player(); !ok {
		t.Error("Init should start the game")
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, game := newTestModel(t, nil)
	p, _ := game.Store().Player()
	startX := p.Pos.X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 3 {
		m, _ = tick(t, m)
	}

	if p.Pos.X <= startX {
		t.Errorf("player did not move right: %f -> %f", startX, p.Pos.X)
	}
	if game.Ticks() != 3 {
		t.Errorf("ticks = %d, expected 3", game.Ticks())
	}
}

func TestModelQuitKeyGoesThroughGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd != nil || m.Quitting() {
		t.Fatal("q should wait for the next tick")
	}

	m, cmd = tick(t, m)
	if !m.Quitting() || cmd == nil {
		t.Error("quit tick should stop the program")
	}
	if !m.State().Quit {
		t.Error("game should report Quit")
	}
	if game.Ticks() != 0 {
		t.Error("the quit tick must not advance the simulation")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelCtrlCInterrupts(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Quitting() || cmd == nil {
		t.Error("ctrl+c should quit immediately")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	var resets []int64
	m, game := newTestModel(t, &resets)

	p, _ := game.Store().Player()
	game.Store().SpawnEnemy(p.Pos, core.V(1, 0), 32)
	m, _ = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m, _ = update(t, m, runeKey('r'))
	m, _ = tick(t, m)

	if m.State().GameOver {
		t.Error("restart should start a new game")
	}
	if len(resets) != 2 {
		t.Errorf("OnReset calls = %d, expected 2", len(resets))
	}
	if _, ok := game.Store().Player(); !ok {
		t.Error("player should respawn")
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	var resets []int64
	m, game := newTestModel(t, &resets)

	m, _ = update(t, m, runeKey('r'))
	m, _ = tick(t, m)

	if len(resets) != 1 {
		t.Error("restart should only apply after game over")
	}
	if game.Ticks() != 1 {
		t.Errorf("ticks = %d, expected 1", game.Ticks())
	}
}

func TestModelPause(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('p'))
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	if !m.State().Paused {
		t.Fatal("expected paused")
	}
	if game.Ticks() != 0 {
		t.Errorf("paused game ticked %d times", game.Ticks())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("pause banner missing")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, nil)
	m, _ = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.Ticks() != 1 {
		t.Error("resize must not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsStartupError(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Height = 0
	game := starcatch.NewWithConfig(cfg)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{})
	m.Init()

	if !strings.Contains(m.View(), "invalid arena") {
		t.Errorf("View() = %q, expected the arena error", m.View())
	}
}
