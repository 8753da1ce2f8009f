package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
)

// HoldWindow is how long a direction stays held after its last key press.
// Terminals report presses and auto-repeats but never releases.
const HoldWindow = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// isInterrupt is true for ctrl+c, which the host honours without a tick.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isInterrupt bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q", "esc":
		return core.ActionQuit, false
	case "w", "up":
		return core.ActionUp, false
	case "a", "left":
		return core.ActionLeft, false
	case "s", "down":
		return core.ActionDown, false
	case "d", "right":
		return core.ActionRight, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// InputTracker turns discrete key presses into per-tick input frames.
// Directions stay held for HoldWindow after the last press; every other
// action is delivered in exactly one frame.
type InputTracker struct {
	window  time.Duration
	held    map[core.Action]time.Time
	pending core.InputFrame
}

// NewInputTracker creates a tracker with the given hold window.
func NewInputTracker(window time.Duration) *InputTracker {
	return &InputTracker{
		window:  window,
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records an action observed at now.
func (t *InputTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !isDirection(a) {
		t.pending.Set(a)
		return
	}
	// Pressing a direction releases its opposite
	delete(t.held, opposite(a))
	t.held[a] = now
}

// Frame returns the input for the tick at now and consumes one-shot actions.
func (t *InputTracker) Frame(now time.Time) core.InputFrame {
	frame := t.pending.Clone()
	for a, at := range t.held {
		if now.Sub(at) <= t.window {
			frame.Set(a)
		} else {
			delete(t.held, a)
		}
	}
	t.pending.Clear()
	return frame
}

// Release drops every held direction and pending action.
func (t *InputTracker) Release() {
	clear(t.held)
	t.pending.Clear()
}

func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
