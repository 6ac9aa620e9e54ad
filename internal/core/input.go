package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate keys (terminal) or key edges (window) into actions.
type Action int

const (
	ActionNone            Action = iota
	ActionLeft                   // A, Left arrow - shift piece left
	ActionRight                  // D, Right arrow - shift piece right
	ActionRotate                 // W, Up arrow - rotate clockwise
	ActionAccelerateBegin        // S, Down arrow pressed - soft-drop speed
	ActionAccelerateEnd          // S, Down arrow released - normal speed
	ActionRestart                // R key - start a fresh round
	ActionQuit                   // Q, Ctrl+C - exit game/session
	ActionPause                  // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionAccelerateBegin:
		return "AccelerateBegin"
	case ActionAccelerateEnd:
		return "AccelerateEnd"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one host frame.
// Order matters for the block game (left then rotate is not rotate then
// left), so actions are kept in arrival order alongside a lookup set.
type InputFrame struct {
	Actions map[Action]bool
	order   []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action for this frame. Repeats are kept in order so that
// two left presses inside one frame move the piece twice.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.order = append(f.order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Ordered returns the actions of this frame in arrival order.
func (f InputFrame) Ordered() []Action {
	out := make([]Action, len(f.order))
	copy(out, f.order)
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.order = append(clone.order, f.order...)
	return clone
}
