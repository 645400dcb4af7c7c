package engine

import (
	"time"

	"github.com/vovakirdan/coretilus/internal/core"
)

// Terminal reports the current terminal size.
type Terminal interface {
	Size() (core.Size, error)
}

// Input yields at most one key event, waiting no longer than timeout.
type Input interface {
	Poll(timeout time.Duration) (core.KeyEvent, bool, error)
}

// FixedTerminal is a Terminal of constant size.
type FixedTerminal core.Size

// Size returns the fixed size.
func (t FixedTerminal) Size() (core.Size, error) {
	return core.Size(t), nil
}

// NoInput never yields an event; Poll sleeps out the timeout so the tick
// pace is kept.
type NoInput struct{}

// Poll waits for timeout and reports no event.
func (NoInput) Poll(timeout time.Duration) (core.KeyEvent, bool, error) {
	if timeout > 0 {
		time.Sleep(timeout)
	}
	return core.KeyEvent{}, false, nil
}

// ScriptedInput replays a fixed list of events, one per poll, then behaves
// like NoInput.
type ScriptedInput struct {
	Events []core.KeyEvent
	Sleep  bool // Wait out the timeout once the script is exhausted
}

// Poll returns the next scripted event.
func (s *ScriptedInput) Poll(timeout time.Duration) (core.KeyEvent, bool, error) {
	if len(s.Events) == 0 {
		if s.Sleep {
			return NoInput{}.Poll(timeout)
		}
		return core.KeyEvent{}, false, nil
	}
	ev := s.Events[0]
	s.Events = s.Events[1:]
	return ev, true, nil
}
