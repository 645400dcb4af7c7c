package core

import "fmt"

// Key identifies a parsed key, independent of the terminal backend.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character, see KeyEvent.Rune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlD
	KeyCtrlZ
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrlC:
		return "Ctrl+C"
	case KeyCtrlD:
		return "Ctrl+D"
	case KeyCtrlZ:
		return "Ctrl+Z"
	default:
		return "Unknown"
	}
}

// KeyEvent is one keyboard event delivered to the engine.
// It is comparable and used directly as a binding key.
type KeyEvent struct {
	Key  Key
	Rune rune // Only set when Key == KeyRune
}

// RuneKey returns the event for a printable character.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// SpecialKey returns the event for a non-printable key.
func SpecialKey(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// IsInterrupt reports whether the event is an interrupt request.
func (e KeyEvent) IsInterrupt() bool {
	return e.Key == KeyCtrlC
}

func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("%q", e.Rune)
	}
	return e.Key.String()
}
