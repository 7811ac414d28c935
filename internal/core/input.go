package core

import "time"

// Action represents a semantic input action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move up in menus
	ActionDown           // S, J, Down arrow - move down in menus
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter, Space - confirm or submit
	ActionDelete         // Backspace - delete last typed character
	ActionBack           // Esc, Q - leave the current screen
	ActionQuit           // Ctrl+C - exit the program
	ActionChar           // Any other printable key, see KeyEvent.Rune
	ActionOther          // Any other key without a character (Tab, F-keys)
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
	case ActionConfirm:
		return "Confirm"
	case ActionDelete:
		return "Delete"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionChar:
		return "Char"
	case ActionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key press delivered by the input source.
// Rune holds the typed character when the key has one, even when the key
// also maps to a navigation action (e.g. 'a' is ActionLeft with Rune 'a').
type KeyEvent struct {
	Action Action
	Rune   rune
}

// Key creates a key event for an action without a character.
func Key(a Action) KeyEvent {
	return KeyEvent{Action: a}
}

// Char creates a key event for a printable character.
func Char(r rune) KeyEvent {
	return KeyEvent{Action: ActionChar, Rune: r}
}

// Digit returns the numeric value of the key if it is '0'..'9'.
func (k KeyEvent) Digit() (int, bool) {
	if k.Rune < '0' || k.Rune > '9' {
		return 0, false
	}
	return int(k.Rune - '0'), true
}

// IsRune reports whether the key typed one of the given characters.
func (k KeyEvent) IsRune(runes ...rune) bool {
	if k.Rune == 0 {
		return false
	}
	for _, r := range runes {
		if k.Rune == r {
			return true
		}
	}
	return false
}

// InputFrame is the input for one iteration of the event loop: the instant
// it was sampled and at most one key event. A frame without a key is a tick.
type InputFrame struct {
	Now time.Time
	Key KeyEvent
}

// TickFrame creates a frame carrying no key press.
func TickFrame(now time.Time) InputFrame {
	return InputFrame{Now: now}
}

// KeyFrame creates a frame carrying a single key press.
func KeyFrame(now time.Time, key KeyEvent) InputFrame {
	return InputFrame{Now: now, Key: key}
}

// Pressed returns true if a key was pressed this frame.
func (f InputFrame) Pressed() bool {
	return f.Key.Action != ActionNone
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Key.Action == a
}
