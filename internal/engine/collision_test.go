package engine

import (
	"strings"
	"testing"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/motion"
)

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, contains) {
			t.Fatalf("panic = %v, expected it to contain %q", r, contains)
		}
	}()
	fn()
}

// box creates a stationary object at (x, y) with an explicit collider.
func box(x, y, w, h int) *Object {
	o := NewObject(1, "box", 0)
	o.SetCollider(NewCollider(core.Coords{}, core.NewSize(w, h)))
	o.SetAnimation(anim.Static(anim.NewFrame(strings.Repeat("#", w))))
	o.SetMovement(motion.Stationary(core.PosAt(x, y), 0))
	return o
}

func TestPairOverlap(t *testing.T) {
	tests := []struct {
		name     string
		ax, ay   int
		bx, by   int
		expected bool
	}{
		{"shared x edge", 0, 0, 2, 0, false},
		{"overlap on x", 0, 0, 1, 0, true},
		{"b left of a touching", 2, 0, 0, 0, true}, // <= on the min side
		{"shared y edge", 0, 0, 0, 2, false},
		{"b below touching", 0, 2, 0, 0, false},
		{"far away", 0, 0, 10, 10, false},
		{"identical", 3, 3, 3, 3, true},
	}

	term := core.NewSize(30, 30)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := box(tc.ax, tc.ay, 2, 2), box(tc.bx, tc.by, 2, 2)
			w := NewWorld(a, b)
			w.ComputePaths(term)

			c := NewPairCollision(a.ID(), b.ID(), nil)
			if got := c.Check(w, term); got != tc.expected {
				t.Errorf("Check() = %v, expected %v", got, tc.expected)
			}
			expectedCount := 0
			if tc.expected {
				expectedCount = 1
			}
			if c.Counter() != expectedCount {
				t.Errorf("Counter() = %d, expected %d", c.Counter(), expectedCount)
			}
		})
	}
}

func TestPairInactiveCollider(t *testing.T) {
	term := core.NewSize(30, 30)
	a, b := box(0, 0, 2, 2), box(1, 0, 2, 2)
	w := NewWorld(a, b)
	w.ComputePaths(term)

	b.Collider().Active = false
	c := NewPairCollision(a.ID(), b.ID(), nil)
	if c.Check(w, term) {
		t.Error("inactive collider must never collide")
	}
	if c.Counter() != 0 {
		t.Errorf("Counter() = %d, expected 0", c.Counter())
	}
}

func TestSelfCollisionPanics(t *testing.T) {
	a := box(0, 0, 2, 2)
	w := NewWorld(a)
	c := NewPairCollision(a.ID(), a.ID(), nil)

	expectPanic(t, "collides with itself", func() {
		c.Check(w, core.NewSize(30, 30))
	})
}

func TestEdgeCollision(t *testing.T) {
	term := core.NewSize(30, 20)
	tests := []struct {
		name     string
		x, y     int
		edge     Edge
		expected bool
	}{
		{"left", 0, 5, EdgeLeft, true},
		{"not left", 1, 5, EdgeLeft, false},
		{"bottom", 5, 0, EdgeBottom, true},
		{"below bottom", 5, -1, EdgeBottom, false},
		{"top", 5, 18, EdgeTop, true},
		{"right", 27, 5, EdgeRight, false},
		{"right flush", 28, 5, EdgeRight, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := box(tc.x, tc.y, 2, 2)
			w := NewWorld(o)
			w.ComputePaths(term)

			c := NewEdgeCollision(o.ID(), tc.edge, nil)
			if got := c.Check(w, term); got != tc.expected {
				t.Errorf("Check() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNullColliderDerivedFromFrames(t *testing.T) {
	o := NewObject(1, "derived", 0)
	o.SetAnimation(anim.TickBased([]anim.Frame{anim.NewFrame("ab\ncd"), anim.NewFrame("abcde")}, 0, 1, 0, true))
	if o.Collider().Size != core.NewSize(5, 2) {
		t.Errorf("derived collider = %v, expected 5x2", o.Collider().Size)
	}

	explicit := NewObject(1, "explicit", 0)
	explicit.SetCollider(NewCollider(core.C(1, 0), core.NewSize(1, 1)))
	explicit.SetAnimation(anim.Static(anim.NewFrame("abcde")))
	if explicit.Collider().Size != core.NewSize(1, 1) {
		t.Errorf("explicit collider replaced with %v", explicit.Collider().Size)
	}
}

func TestProcessCollisionsTriggers(t *testing.T) {
	term := core.NewSize(30, 30)
	a, b := box(0, 0, 2, 2), box(1, 1, 2, 2)
	w := NewWorld(a, b)
	w.ComputePaths(term)
	ctx := NewContext(w, term)

	var counts []int
	var gotA, gotB ObjectID
	c := NewPairCollision(a.ID(), b.ID(), func(ctx *Context, x, y ObjectID, count int) {
		gotA, gotB = x, y
		counts = append(counts, count)
		// Callbacks may change other objects through the context
		ctx.Hide(y)
	})

	ProcessCollisions(ctx, []*Collision{c})
	ProcessCollisions(ctx, []*Collision{c})

	if gotA != a.ID() || gotB != b.ID() {
		t.Error("callback received the wrong participants")
	}
	if len(counts) != 2 || counts[0] != 1 || counts[1] != 2 {
		t.Errorf("callback counts = %v, expected [1 2]", counts)
	}
	if b.Visible() {
		t.Error("callback should have hidden b")
	}
}

func TestColliderRect(t *testing.T) {
	c := NewCollider(core.C(-1, 2), core.NewSize(4, 3))
	r := c.Rect(core.C(10, 5))
	if r.Min() != core.C(9, 7) || r.Max() != core.C(13, 10) {
		t.Errorf("Rect() = %+v, expected (9, 7) to (13, 10)", r)
	}
}
