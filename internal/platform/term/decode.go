// Package term is the raw ANSI terminal backend: alternate screen, raw mode,
// size queries and a decoded key stream for the engine.
package term

import (
	"unicode/utf8"

	"github.com/vovakirdan/coretilus/internal/core"
)

// Decode parses raw terminal input into key events. It returns the events
// and the number of bytes consumed; an incomplete trailing sequence is left
// unconsumed unless final is set, in which case a lone ESC becomes Escape.
func Decode(data []byte, final bool) ([]core.KeyEvent, int) {
	var events []core.KeyEvent
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b >= 0x20 && b < 0x7f:
			events = append(events, core.RuneKey(rune(b)))
			i++

		case b == 0x1b:
			if i+1 >= len(data) {
				if final {
					events = append(events, core.SpecialKey(core.KeyEscape))
					i++
				}
				return events, i
			}
			n, ev, ok := decodeEscape(data[i:])
			if n == 0 {
				if !final {
					return events, i
				}
				n, ev, ok = 1, core.SpecialKey(core.KeyEscape), true
			}
			if ok {
				events = append(events, ev)
			}
			i += n

		case b == 0x7f:
			events = append(events, core.SpecialKey(core.KeyBackspace))
			i++

		case b < 0x20:
			if ev, ok := decodeControl(b); ok {
				events = append(events, ev)
			}
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				if !final {
					return events, i
				}
				i++
				continue
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				events = append(events, core.RuneKey(r))
			}
			i += size
		}
	}
	return events, i
}

// decodeEscape parses a sequence starting with ESC. It returns 0 bytes when
// more input is needed, and ok=false for sequences that carry no key.
func decodeEscape(data []byte) (int, core.KeyEvent, bool) {
	switch data[1] {
	case '[', 'O':
		for end := 2; end < len(data) && end < 16; end++ {
			c := data[end]
			if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '~' {
				if data[1] == 'O' && end != 2 {
					return end + 1, core.KeyEvent{}, false
				}
				ev, ok := lookupFinal(c, data[2:end])
				return end + 1, ev, ok
			}
			if c < 0x20 || c > 0x7e {
				return end, core.KeyEvent{}, false
			}
		}
		if len(data) >= 16 {
			return len(data), core.KeyEvent{}, false
		}
		return 0, core.KeyEvent{}, false
	case 0x1b:
		return 1, core.SpecialKey(core.KeyEscape), true
	default:
		// Alt+key arrives as ESC followed by the key; keep the key
		return 1, core.KeyEvent{}, false
	}
}

// lookupFinal maps a CSI/SS3 final byte to a key. Parameters (modifiers)
// are ignored.
func lookupFinal(final byte, params []byte) (core.KeyEvent, bool) {
	switch final {
	case 'A':
		return core.SpecialKey(core.KeyUp), true
	case 'B':
		return core.SpecialKey(core.KeyDown), true
	case 'C':
		return core.SpecialKey(core.KeyRight), true
	case 'D':
		return core.SpecialKey(core.KeyLeft), true
	case '~':
		if string(params) == "3" {
			return core.SpecialKey(core.KeyBackspace), true
		}
	}
	return core.KeyEvent{}, false
}

func decodeControl(b byte) (core.KeyEvent, bool) {
	switch b {
	case 0x03:
		return core.SpecialKey(core.KeyCtrlC), true
	case 0x04:
		return core.SpecialKey(core.KeyCtrlD), true
	case 0x08:
		return core.SpecialKey(core.KeyBackspace), true
	case 0x09:
		return core.SpecialKey(core.KeyTab), true
	case 0x0a, 0x0d:
		return core.SpecialKey(core.KeyEnter), true
	case 0x1a:
		return core.SpecialKey(core.KeyCtrlZ), true
	}
	return core.KeyEvent{}, false
}
