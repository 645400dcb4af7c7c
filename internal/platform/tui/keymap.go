package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coretilus/internal/core"
)

// specialKeys maps Bubble Tea key types onto engine keys.
var specialKeys = map[tea.KeyType]core.Key{
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyEsc:       core.KeyEscape,
	tea.KeyTab:       core.KeyTab,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyCtrlC:     core.KeyCtrlC,
	tea.KeyCtrlD:     core.KeyCtrlD,
	tea.KeyCtrlZ:     core.KeyCtrlZ,
}

// MapKey translates a Bubble Tea key message into an engine key event.
// It returns false for keys the engine has no name for, and for pasted
// runs of several characters.
func MapKey(msg tea.KeyMsg) (core.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return core.KeyEvent{}, false
		}
		return core.RuneKey(msg.Runes[0]), true
	case tea.KeySpace:
		return core.RuneKey(' '), true
	}
	if k, ok := specialKeys[msg.Type]; ok {
		return core.SpecialKey(k), true
	}
	return core.KeyEvent{}, false
}
