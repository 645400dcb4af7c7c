// Package engine runs ASCII scenes on a fixed tick clock: it advances every
// object, composites the screen, dispatches collisions and keys, and decides
// when a scene is over.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coretilus/internal/core"
)

// ErrNoObjects is returned when running a world without objects.
var ErrNoObjects = errors.New("engine: no objects to run")

// Config holds the loop settings.
type Config struct {
	TickDuration    time.Duration // Wall-clock budget of one tick
	TTL             int           // Ticks before the run expires, 0 = never
	StopOnInterrupt bool          // Ctrl+C ends the run
	FallbackSize    core.Size     // Used when the terminal size is unknown
}

// DefaultConfig returns the stock loop settings.
func DefaultConfig() Config {
	return Config{
		TickDuration:    core.DefaultTickDuration,
		StopOnInterrupt: true,
		FallbackSize:    core.DefaultTerminalSize,
	}
}

// Reason tells why a run ended.
type Reason uint8

const (
	ReasonNone        Reason = iota // Still running
	ReasonCompleted                 // Every visible object is done
	ReasonStopped                   // A callback called Stop
	ReasonExpired                   // The engine TTL was reached
	ReasonInterrupted               // The user pressed Ctrl+C
	ReasonCancelled                 // The context was cancelled
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "running"
	case ReasonCompleted:
		return "completed"
	case ReasonStopped:
		return "stopped"
	case ReasonExpired:
		return "expired"
	case ReasonInterrupted:
		return "interrupted"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result describes a finished run.
type Result struct {
	Reason Reason
	Ticks  int
}

// Interrupted reports whether the user ended the run.
func (r Result) Interrupted() bool {
	return r.Reason == ReasonInterrupted
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine drives one scene. It is not safe for concurrent use; backends call
// it from a single goroutine.
type Engine struct {
	cfg         Config
	world       *World
	collisions  []*Collision
	screen      *core.Screen
	ctx         *Context
	logger      *log.Logger
	tick        int
	ticks       int
	interrupted bool
	started     bool
}

// New creates an engine for a world and its collisions.
func New(cfg Config, world *World, collisions []*Collision, opts ...Option) *Engine {
	if cfg.TickDuration <= 0 {
		cfg.TickDuration = core.DefaultTickDuration
	}
	if cfg.FallbackSize.W <= 0 || cfg.FallbackSize.H <= 0 {
		cfg.FallbackSize = core.DefaultTerminalSize
	}
	e := &Engine{
		cfg:        cfg,
		world:      world,
		collisions: collisions,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.ctx = &Context{world: world, logger: e.logger}
	return e
}

// Config returns the loop settings.
func (e *Engine) Config() Config { return e.cfg }

// World returns the scene objects.
func (e *Engine) World() *World { return e.world }

// Collisions returns the registered collisions.
func (e *Engine) Collisions() []*Collision { return e.collisions }

// Screen returns the composited buffer of the last tick.
func (e *Engine) Screen() *core.Screen { return e.screen }

// Context returns the handle given to callbacks.
func (e *Engine) Context() *Context { return e.ctx }

// Ticks returns how many ticks ran since Start.
func (e *Engine) Ticks() int { return e.ticks }

// Start prepares a run on a terminal of the given size. Every path is
// recomputed on the first tick.
func (e *Engine) Start(size core.Size) error {
	if e.world == nil || e.world.Len() == 0 {
		return ErrNoObjects
	}
	size = e.sanitize(size)
	e.screen = core.NewScreen(size.W, size.H)
	e.ctx.terminal = size
	e.ctx.stopped = false
	e.tick = 0
	e.ticks = 0
	e.interrupted = false
	e.started = true
	e.world.Invalidate()
	e.logger.Debug("run started", "objects", e.world.Len(), "collisions", len(e.collisions), "size", fmt.Sprintf("%dx%d", size.W, size.H))
	return nil
}

func (e *Engine) sanitize(size core.Size) core.Size {
	if size.W <= 0 || size.H <= 0 {
		return e.cfg.FallbackSize
	}
	return size
}

// Resize switches to a new terminal size; every path is recomputed on the
// next tick.
func (e *Engine) Resize(size core.Size) {
	size = e.sanitize(size)
	if size == e.ctx.terminal {
		return
	}
	e.logger.Debug("resize", "width", size.W, "height", size.H)
	e.ctx.terminal = size
	if e.screen != nil {
		e.screen.Resize(size.W, size.H)
	}
	e.world.Invalidate()
}

// Tick runs one simulation step: pending paths are recomputed, visible
// objects advance and are drawn in draw-layer order, then collisions run.
// Changes made by collision callbacks show on the next tick.
func (e *Engine) Tick() {
	if !e.started {
		panic("engine: Tick before Start")
	}
	term := e.ctx.terminal
	e.ctx.tick = e.tick

	e.world.ComputePaths(term)

	visible := e.world.drawOrder()
	for _, o := range visible {
		e.world.With(o.id, func(o *Object) {
			o.Advance(e.tick)
		})
	}

	// Relative objects finish where they are drawn, once every parent moved
	e.screen.Clear()
	for _, o := range e.world.drawOrder() {
		pos := e.world.Coords(o.id)
		o.movement.Follow(pos, term, o.Size())
		for _, l := range o.layers {
			e.screen.Blit(pos.X, pos.Y, l.Frame().Lines())
		}
	}

	ProcessCollisions(e.ctx, e.collisions)

	e.tick++
	e.ticks++
}

// HandleKey dispatches one key event. Ctrl+C ends the run when
// StopOnInterrupt is set and is ignored otherwise; other keys go to the
// first object bound to them.
func (e *Engine) HandleKey(ev core.KeyEvent) {
	if ev.IsInterrupt() {
		if e.cfg.StopOnInterrupt {
			e.interrupted = true
		}
		return
	}
	for _, id := range e.world.order {
		o := e.world.objects[id]
		action, ok := o.Action(ev)
		if !ok {
			continue
		}
		e.logger.Debug("key", "key", ev.String(), "object", o.String())
		action(e.ctx, id)
		return
	}
}

// Finished reports whether the run is over and why.
func (e *Engine) Finished() (Reason, bool) {
	switch {
	case e.interrupted:
		return ReasonInterrupted, true
	case e.ctx.stopped:
		return ReasonStopped, true
	case e.cfg.TTL > 0 && e.ticks >= e.cfg.TTL:
		return ReasonExpired, true
	case e.allDone():
		return ReasonCompleted, true
	}
	return ReasonNone, false
}

func (e *Engine) allDone() bool {
	for _, id := range e.world.order {
		o := e.world.objects[id]
		if o.visible && !o.Done() {
			return false
		}
	}
	return true
}

// Run drives the loop until the scene ends: one tick, one flush to out, then
// a key wait bounded by the rest of the tick budget.
func (e *Engine) Run(ctx context.Context, term Terminal, in Input, out io.Writer) (Result, error) {
	if err := e.Start(e.querySize(term)); err != nil {
		return Result{}, err
	}

	for {
		select {
		case <-ctx.Done():
			return e.finish(ReasonCancelled), nil
		default:
		}

		begin := time.Now()
		e.Resize(e.querySize(term))
		e.Tick()

		if err := e.screen.Flush(out); err != nil {
			return e.finish(ReasonNone), fmt.Errorf("engine: flush frame: %w", err)
		}

		// An overrun tick still polls once, without waiting
		remaining := max(e.cfg.TickDuration-time.Since(begin), 0)
		ev, ok, err := in.Poll(remaining)
		if err != nil {
			return e.finish(ReasonNone), fmt.Errorf("engine: poll input: %w", err)
		}
		if ok {
			e.HandleKey(ev)
		}

		if reason, done := e.Finished(); done {
			return e.finish(reason), nil
		}
	}
}

func (e *Engine) querySize(term Terminal) core.Size {
	size, err := term.Size()
	if err != nil {
		e.logger.Debug("terminal size unavailable, using fallback", "err", err, "width", e.cfg.FallbackSize.W, "height", e.cfg.FallbackSize.H)
		return e.cfg.FallbackSize
	}
	return size
}

func (e *Engine) finish(reason Reason) Result {
	e.logger.Debug("run finished", "reason", reason, "ticks", e.ticks)
	return Result{Reason: reason, Ticks: e.ticks}
}
