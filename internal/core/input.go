package core

// Action represents a semantic input, abstracted from physical key presses.
// Hosts decode their device (terminal keys, SSH PTY, scripts) into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionLeft           // A, Left arrow
	ActionDown           // S, Down arrow
	ActionRight          // D, Right arrow
	ActionPause          // P - host only
	ActionRestart        // R - host only, after game over
	ActionQuit           // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the decoded input snapshot for one simulation tick.
// The simulation reads it but never owns the device behind it.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
