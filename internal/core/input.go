package core

// Action represents a semantic editor action, abstracted from physical key
// presses so views can be driven by keyboard, mouse or tests alike.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - move cursor up
	ActionDown           // Down arrow - move cursor down
	ActionLeft           // Left arrow - move cursor left
	ActionRight          // Right arrow - move cursor right
	ActionStroke         // Space - start or finish a keyboard drag
	ActionCancel         // Esc - abandon the current drag
	ActionPalette        // Tab - toggle the tool palette
	ActionHelp           // ? - toggle the full help
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStroke:
		return "Stroke"
	case ActionCancel:
		return "Cancel"
	case ActionPalette:
		return "Palette"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor movement of a directional action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
