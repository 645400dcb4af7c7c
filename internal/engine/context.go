package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coretilus/internal/core"
)

// Context is the handle passed to key actions and collision callbacks. It
// lets them look up and change any object by id and stop the run.
type Context struct {
	world    *World
	terminal core.Size
	tick     int
	stopped  bool
	logger   *log.Logger
}

// NewContext creates a context outside of a running engine, for tests and
// tools.
func NewContext(w *World, terminal core.Size) *Context {
	return &Context{
		world:    w,
		terminal: terminal,
		logger:   log.New(io.Discard),
	}
}

// World returns the objects of the running scene.
func (c *Context) World() *World { return c.world }

// Terminal returns the current terminal size.
func (c *Context) Terminal() core.Size { return c.terminal }

// Tick returns the current tick number.
func (c *Context) Tick() int { return c.tick }

// Logger returns the engine logger.
func (c *Context) Logger() *log.Logger { return c.logger }

// Stop ends the run after the current tick.
func (c *Context) Stop() { c.stopped = true }

// Stopped reports whether Stop was called.
func (c *Context) Stopped() bool { return c.stopped }

// Object returns an object that must exist.
func (c *Context) Object(id ObjectID) *Object {
	return c.world.MustGet(id)
}

// With runs fn with exclusive access to an object.
func (c *Context) With(id ObjectID, fn func(o *Object)) {
	c.world.With(id, fn)
}

// Show makes objects visible.
func (c *Context) Show(ids ...ObjectID) {
	for _, id := range ids {
		c.world.With(id, func(o *Object) { o.SetVisible(true) })
	}
}

// Hide makes objects invisible.
func (c *Context) Hide(ids ...ObjectID) {
	for _, id := range ids {
		c.world.With(id, func(o *Object) { o.SetVisible(false) })
	}
}
