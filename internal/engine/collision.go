package engine

import (
	"fmt"

	"github.com/vovakirdan/coretilus/internal/core"
)

// Edge is one side of the terminal.
type Edge uint8

const (
	EdgeBottom Edge = iota
	EdgeLeft
	EdgeTop
	EdgeRight
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// CollisionFunc runs when two objects overlap. count is the number of hits so
// far, this one included.
type CollisionFunc func(ctx *Context, a, b ObjectID, count int)

// EdgeFunc runs when an object touches a terminal edge.
type EdgeFunc func(ctx *Context, a ObjectID, count int)

// Collision watches either a pair of objects or an object and an edge.
type Collision struct {
	a, b    ObjectID
	edge    Edge
	isEdge  bool
	counter int
	onPair  CollisionFunc
	onEdge  EdgeFunc
}

// NewPairCollision watches objects a and b. Passing the same object twice is
// reported when the collision is first checked.
func NewPairCollision(a, b ObjectID, fn CollisionFunc) *Collision {
	return &Collision{a: a, b: b, onPair: fn}
}

// NewEdgeCollision watches object a against a terminal edge.
func NewEdgeCollision(a ObjectID, edge Edge, fn EdgeFunc) *Collision {
	return &Collision{a: a, edge: edge, isEdge: true, onEdge: fn}
}

// Counter returns how many times the collision was detected.
func (c *Collision) Counter() int { return c.counter }

// IsEdge reports whether this is an edge collision.
func (c *Collision) IsEdge() bool { return c.isEdge }

// Edge returns the watched edge of an edge collision.
func (c *Collision) Edge() Edge { return c.edge }

// Participants returns the watched ids; b is zero for edge collisions.
func (c *Collision) Participants() (a, b ObjectID) { return c.a, c.b }

// String formats the collision for logs.
func (c *Collision) String() string {
	if c.isEdge {
		return fmt.Sprintf("%s|%s", c.a.Short(), c.edge)
	}
	return fmt.Sprintf("%s|%s", c.a.Short(), c.b.Short())
}

// Check tests the collision against the world and bumps the counter on a
// hit.
func (c *Collision) Check(w *World, terminal core.Size) bool {
	if c.isEdge {
		return c.checkEdge(w, terminal)
	}
	return c.checkPair(w)
}

func (c *Collision) checkPair(w *World) bool {
	if c.a == c.b {
		panic(fmt.Sprintf("engine: object %s collides with itself", c.a))
	}
	a, b := w.MustGet(c.a), w.MustGet(c.b)
	if !a.collider.Active || !b.collider.Active {
		return false
	}
	ra, rb := a.collider.Rect(w.Coords(c.a)), b.collider.Rect(w.Coords(c.b))
	hit := overlaps(ra.Min(), ra.Max(), rb.Min(), rb.Max())
	if hit {
		c.counter++
	}
	return hit
}

func (c *Collision) checkEdge(w *World, terminal core.Size) bool {
	a := w.MustGet(c.a)
	if !a.collider.Active {
		return false
	}
	r := a.collider.Rect(w.Coords(c.a))
	lo, hi := r.Min(), r.Max()

	var hit bool
	switch c.edge {
	case EdgeBottom:
		hit = lo.Y == 0
	case EdgeLeft:
		hit = lo.X == 0
	case EdgeTop:
		hit = hi.Y == terminal.H
	case EdgeRight:
		hit = hi.X == terminal.W
	}
	if hit {
		c.counter++
	}
	return hit
}

// Trigger invokes the callback with the current counter.
func (c *Collision) Trigger(ctx *Context) {
	if c.isEdge {
		if c.onEdge != nil {
			c.onEdge(ctx, c.a, c.counter)
		}
		return
	}
	if c.onPair != nil {
		c.onPair(ctx, c.a, c.b, c.counter)
	}
}

// ProcessCollisions checks every collision in order and triggers the ones
// that hit. It returns the number of hits.
func ProcessCollisions(ctx *Context, collisions []*Collision) int {
	hits := 0
	for _, c := range collisions {
		if !c.Check(ctx.world, ctx.terminal) {
			continue
		}
		hits++
		ctx.logger.Debug("collision", "pair", c.String(), "count", c.counter, "tick", ctx.tick)
		c.Trigger(ctx)
	}
	return hits
}
