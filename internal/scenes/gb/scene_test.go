package gb

import (
	"testing"

	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/registry"
	"github.com/vovakirdan/coretilus/internal/scenes/scenetest"
)

var term = core.NewSize(100, 50)

func shapes(w *engine.World) []*engine.Object {
	var out []*engine.Object
	for _, o := range w.Objects() {
		if IsShape(o.Kind()) {
			out = append(out, o)
		}
	}
	return out
}

func TestBuild(t *testing.T) {
	tests := []struct {
		shapes     int
		collisions int
	}{
		{1, 1},
		{3, 6},
		{5, 15},
	}

	for _, tc := range tests {
		p := registry.DefaultParams(term)
		p.Config.Gb.Shapes = tc.shapes
		b, err := Build(p)
		if err != nil {
			t.Fatal(err)
		}
		if b.World.Len() != tc.shapes+2 {
			t.Errorf("%d shapes: objects = %d", tc.shapes, b.World.Len())
		}
		if len(b.Collisions) != tc.collisions {
			t.Errorf("%d shapes: collisions = %d, expected %d", tc.shapes, len(b.Collisions), tc.collisions)
		}
		for i, s := range shapes(b.World) {
			if s.Visible() != (i == 0) || s.Collider().Active != (i == 0) {
				t.Errorf("shape %d visible=%v active=%v", i, s.Visible(), s.Collider().Active)
			}
		}
	}
}

func TestShapesStack(t *testing.T) {
	scene, _ := registry.Get("gb")
	b := scenetest.Build(t, scene, term, nil)
	e := scenetest.Engine(t, b, term)

	reason, done := scenetest.Run(e, 20000, nil)
	if !done || reason != engine.ReasonCompleted {
		t.Fatalf("run ended with %v after %d ticks", reason, e.Ticks())
	}

	ss := shapes(b.World)
	if len(ss) != 3 {
		t.Fatalf("shapes = %d", len(ss))
	}
	y := floorY
	for i, s := range ss {
		if !s.Visible() {
			t.Fatalf("shape %d never dropped", i)
		}
		at := b.World.Coords(s.ID())
		if at.X != dropX || at.Y != y {
			t.Errorf("shape %d at %v, expected (%d, %d)", i, at, dropX, y)
		}
		y += s.Size().H
	}
}

func TestNudgeStaysInScreen(t *testing.T) {
	scene, _ := registry.Get("gb")

	tests := []struct {
		name string
		key  core.KeyEvent
		n    int
		x    int
	}{
		{"one right", core.RuneKey('d'), 1, dropX + nudgeStep},
		{"one left", core.SpecialKey(core.KeyLeft), 1, dropX - nudgeStep},
		{"far left", core.RuneKey('a'), 20, screenLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := scenetest.Build(t, scene, term, nil)
			e := scenetest.Engine(t, b, term)
			keys := make(map[int]core.KeyEvent)
			for i := range tc.n {
				keys[i] = tc.key
			}
			scenetest.Run(e, tc.n+1, keys)

			first := shapes(b.World)[0]
			if at := b.World.Coords(first.ID()); at.X != tc.x {
				t.Errorf("shape x = %d, expected %d", at.X, tc.x)
			}
		})
	}

	t.Run("far right", func(t *testing.T) {
		b := scenetest.Build(t, scene, term, nil)
		e := scenetest.Engine(t, b, term)
		keys := make(map[int]core.KeyEvent)
		for i := range 20 {
			keys[i] = core.SpecialKey(core.KeyRight)
		}
		scenetest.Run(e, 21, keys)

		first := shapes(b.World)[0]
		at := b.World.Coords(first.ID())
		if right := at.X + first.Size().W; right != screenLeft+screenWidth {
			t.Errorf("shape right edge = %d, expected against %d", right, screenLeft+screenWidth)
		}
	})
}
