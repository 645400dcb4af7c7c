package engine

import (
	"testing"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/motion"
)

func TestWorldLookup(t *testing.T) {
	a := NewObject(1, "a", 0)
	b := NewObject(2, "b", 0)
	c := NewObject(2, "c", 0)
	w := NewWorld(a, b, c)

	if w.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", w.Len())
	}
	if got := w.FindByKind(2); len(got) != 2 || got[0] != b || got[1] != c {
		t.Errorf("FindByKind(2) = %v", got)
	}
	if got, ok := w.FirstByKind(2); !ok || got != b {
		t.Errorf("FirstByKind(2) = %v, %v", got, ok)
	}
	if got, ok := w.FindByName("c"); !ok || got != c {
		t.Errorf("FindByName(c) = %v, %v", got, ok)
	}
	if _, ok := w.Get(core.NewObjectID()); ok {
		t.Error("Get should miss unknown ids")
	}
	ids := w.IDs()
	if ids[0] != a.ID() || ids[2] != c.ID() {
		t.Error("IDs() must keep insertion order")
	}
}

func TestWorldDuplicatePanics(t *testing.T) {
	a := NewObject(1, "a", 0)
	w := NewWorld(a)
	expectPanic(t, "already in world", func() {
		w.Add(a)
	})
}

func TestWorldNestedBorrowPanics(t *testing.T) {
	a := NewObject(1, "a", 0)
	b := NewObject(1, "b", 0)
	w := NewWorld(a, b)

	// Borrowing two different objects is fine
	w.With(a.ID(), func(*Object) {
		w.With(b.ID(), func(*Object) {})
	})
	if w.Borrowed(a.ID()) || w.Borrowed(b.ID()) {
		t.Fatal("borrows must be released")
	}

	expectPanic(t, "borrowed", func() {
		w.With(a.ID(), func(*Object) {
			w.With(a.ID(), func(*Object) {})
		})
	})
	if w.Borrowed(a.ID()) {
		t.Error("borrow must be released after a panic")
	}
}

func TestRelativePathFollowsParent(t *testing.T) {
	term := core.NewSize(40, 20)

	parent := NewObject(1, "engine", 0)
	parent.SetAnimation(anim.Static(anim.NewFrame("===")))
	parent.SetMovement(motion.Linear(core.PosAt(30, 4), core.PosAt(0, 4), 1))

	child := NewObject(2, "smoke", 0)
	child.SetAnimation(anim.Static(anim.NewFrame("o")))
	child.SetMovement(motion.Relative(parent.ID(), core.C(1, 3)))

	// Child inserted first: the parent must still be computed before it
	w := NewWorld(child, parent)
	if n := w.ComputePaths(term); n != 2 {
		t.Fatalf("ComputePaths() = %d, expected 2", n)
	}
	if got := w.Coords(child.ID()); got != core.C(31, 7) {
		t.Errorf("child at %v, expected (31, 7)", got)
	}

	// Nothing pending: nothing recomputed
	if n := w.ComputePaths(term); n != 0 {
		t.Errorf("second ComputePaths() = %d, expected 0", n)
	}

	// Nudging the parent rebuilds the child too
	parent.Movement().AddOffset(core.C(-2, 0))
	if n := w.ComputePaths(term); n != 2 {
		t.Errorf("ComputePaths() after nudge = %d, expected 2", n)
	}
	if got := child.Movement().Path()[0]; got != core.C(29, 7) {
		t.Errorf("child path start = %v, expected (29, 7)", got)
	}
}

func TestRelativeUnknownParentPanics(t *testing.T) {
	child := NewObject(2, "orphan", 0)
	child.SetMovement(motion.Relative(core.NewObjectID(), core.C(0, 0)))
	w := NewWorld(child)

	expectPanic(t, "unknown object", func() {
		w.ComputePaths(core.NewSize(10, 10))
	})
}

func TestRelativeCyclePanics(t *testing.T) {
	a := NewObject(1, "a", 0)
	b := NewObject(1, "b", 0)
	a.SetMovement(motion.Relative(b.ID(), core.C(0, 0)))
	b.SetMovement(motion.Relative(a.ID(), core.C(0, 0)))
	w := NewWorld(a, b)

	expectPanic(t, "cycle", func() {
		w.ComputePaths(core.NewSize(10, 10))
	})
}

func TestDrawOrder(t *testing.T) {
	low := NewObject(1, "low", 5)
	high := NewObject(1, "high", 10)
	hidden := NewObject(1, "hidden", 0).SetVisible(false)
	tie := NewObject(1, "tie", 5)
	w := NewWorld(high, low, hidden, tie)

	order := w.drawOrder()
	names := make([]string, len(order))
	for i, o := range order {
		names[i] = o.Name()
	}
	expected := []string{"low", "tie", "high"}
	if len(names) != len(expected) {
		t.Fatalf("drawOrder() = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("drawOrder() = %v, expected %v", names, expected)
			break
		}
	}
}

func TestRelativeDoneWhereDrawn(t *testing.T) {
	term := core.NewSize(30, 20)

	parent := NewObject(1, "engine", 0).
		SetAnimation(anim.Static(anim.NewFrame(">"))).
		SetMovement(motion.Linear(core.PosAt(0, 5), core.PosAt(60, 5), 1))
	child := NewObject(2, "smoke", 0).
		SetAnimation(anim.Static(anim.NewFrame("o"))).
		SetMovement(motion.Relative(parent.ID(), core.C(0, 0))).
		SetVisible(false)

	e := New(testConfig(), NewWorld(parent, child), nil)
	if err := e.Start(term); err != nil {
		t.Fatal(err)
	}
	for range 40 {
		e.Tick()
	}

	// Shown after the parent already left the screen
	child.SetVisible(true)
	e.Tick()
	at := e.World().Coords(child.ID())
	if at.X < term.W {
		t.Fatalf("child drawn at %v, expected past the right edge", at)
	}
	if !child.Done() {
		t.Errorf("child drawn off-screen at %v but not done", at)
	}

	// The child no longer holds the run open once the parent is done
	for range 100 {
		if _, done := e.Finished(); done {
			break
		}
		e.Tick()
	}
	reason, done := e.Finished()
	if !done || reason != ReasonCompleted {
		t.Fatalf("run ended with %v, done = %v", reason, done)
	}
	if !parent.Movement().Done() || e.Ticks() != 62 {
		t.Errorf("finished after %d ticks, expected 62 when the parent path ends", e.Ticks())
	}
}

func TestRelativeDoneMatchesDrawnCoords(t *testing.T) {
	term := core.NewSize(10, 10)

	parent := NewObject(1, "engine", 0).
		SetAnimation(anim.Static(anim.NewFrame(">"))).
		SetMovement(motion.Linear(core.PosAt(5, 0), core.PosAt(15, 0), 1))
	child := NewObject(2, "car", 0).
		SetAnimation(anim.Static(anim.NewFrame("##"))).
		SetMovement(motion.Relative(parent.ID(), core.C(2, 0)))

	e := New(testConfig(), NewWorld(parent, child), nil)
	if err := e.Start(term); err != nil {
		t.Fatal(err)
	}
	for range 12 {
		e.Tick()
		at := e.World().Coords(child.ID())
		if offscreen := at.X >= term.W; child.Done() != offscreen {
			t.Fatalf("tick %d: child at %v, done = %v", e.Ticks(), at, child.Done())
		}
	}
}
