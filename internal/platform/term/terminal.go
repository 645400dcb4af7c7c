//go:build unix

package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/coretilus/internal/core"
)

var (
	seqAltScreenEnter = []byte("\x1b[?1049h")
	seqAltScreenExit  = []byte("\x1b[?1049l")
	seqCursorHide     = []byte("\x1b[?25l")
	seqCursorShow     = []byte("\x1b[?25h")
	seqClear          = []byte("\x1b[2J")
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

// pollInterval bounds how long the reader blocks before checking for stop.
const pollInterval = 50 // ms

// Terminal owns the process terminal while a scene runs. It implements the
// engine's Terminal and Input interfaces and is the engine's output sink.
type Terminal struct {
	in       *os.File
	out      *os.File
	inFd     int
	outFd    int
	oldState *xterm.State
	logger   *log.Logger

	events chan core.KeyEvent
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once
}

// Open switches stdin to raw mode, enters the alternate screen, hides the
// cursor and starts reading keys. Close restores everything.
func Open(logger *log.Logger) (*Terminal, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Terminal{
		in:     os.Stdin,
		out:    os.Stdout,
		inFd:   int(os.Stdin.Fd()),
		outFd:  int(os.Stdout.Fd()),
		logger: logger,
		events: make(chan core.KeyEvent, 64),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	if !xterm.IsTerminal(t.inFd) || !xterm.IsTerminal(t.outFd) {
		return nil, ErrNotTerminal
	}

	old, err := xterm.MakeRaw(t.inFd)
	if err != nil {
		return nil, fmt.Errorf("term: enter raw mode: %w", err)
	}
	t.oldState = old

	if err := t.writeAll(seqAltScreenEnter, seqCursorHide, seqClear); err != nil {
		_ = xterm.Restore(t.inFd, old)
		return nil, fmt.Errorf("term: prepare screen: %w", err)
	}

	go t.readLoop()
	return t, nil
}

func (t *Terminal) writeAll(seqs ...[]byte) error {
	for _, s := range seqs {
		if _, err := t.out.Write(s); err != nil {
			return err
		}
	}
	return nil
}

// Size queries the current terminal size.
func (t *Terminal) Size() (core.Size, error) {
	w, h, err := xterm.GetSize(t.outFd)
	if err != nil {
		return core.Size{}, fmt.Errorf("term: get size: %w", err)
	}
	return core.NewSize(w, h), nil
}

// Write sends one frame to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Poll waits at most timeout for one key event.
func (t *Terminal) Poll(timeout time.Duration) (core.KeyEvent, bool, error) {
	if timeout <= 0 {
		select {
		case ev := <-t.events:
			return ev, true, nil
		default:
			return core.KeyEvent{}, false, nil
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-t.events:
		return ev, true, nil
	case <-timer.C:
		return core.KeyEvent{}, false, nil
	}
}

// Close stops the reader and restores the terminal. It is safe to call more
// than once.
func (t *Terminal) Close() error {
	var err error
	t.once.Do(func() {
		close(t.stopCh)
		select {
		case <-t.doneCh:
		case <-time.After(2 * pollInterval * time.Millisecond):
		}
		err = t.writeAll(seqCursorShow, seqAltScreenExit)
		if t.oldState != nil {
			if rerr := xterm.Restore(t.inFd, t.oldState); rerr != nil && err == nil {
				err = fmt.Errorf("term: restore mode: %w", rerr)
			}
		}
	})
	return err
}

// readLoop polls stdin and forwards decoded keys. Keys are dropped when the
// engine falls behind.
func (t *Terminal) readLoop() {
	defer close(t.doneCh)

	buf := make([]byte, 0, 256)
	chunk := make([]byte, 256)
	for {
		select {
		case <-t.stopCh:
			return
		default:
		}

		fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			t.logger.Error("poll stdin", "err", err)
			return
		}
		if n == 0 {
			// Idle: a pending lone ESC is a real Escape press
			if len(buf) > 0 {
				events, _ := Decode(buf, true)
				t.forward(events)
				buf = buf[:0]
			}
			continue
		}

		rn, err := unix.Read(t.inFd, chunk)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			t.logger.Error("read stdin", "err", err)
			return
		}
		if rn == 0 {
			return
		}

		buf = append(buf, chunk[:rn]...)
		events, consumed := Decode(buf, false)
		t.forward(events)
		buf = append(buf[:0], buf[consumed:]...)
	}
}

func (t *Terminal) forward(events []core.KeyEvent) {
	for _, ev := range events {
		select {
		case t.events <- ev:
		default:
			t.logger.Debug("key dropped", "key", ev.String())
		}
	}
}
