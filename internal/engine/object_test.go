package engine

import (
	"testing"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/motion"
)

func TestObjectDone(t *testing.T) {
	term := core.NewSize(30, 30)
	loop := func() *anim.Animation {
		return anim.TickBased([]anim.Frame{anim.NewFrame("a"), anim.NewFrame("b")}, 0, 2, 0, true)
	}
	once := func() *anim.Animation {
		return anim.TickBased([]anim.Frame{anim.NewFrame("a"), anim.NewFrame("b")}, 0, 2, 0, false)
	}

	tests := []struct {
		name     string
		build    func() *Object
		ticks    int
		expected bool
	}{
		{
			name: "linear follows movement",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(loop()).
					SetMovement(motion.Linear(core.PosAt(0, 0), core.PosAt(2, 0), 1))
			},
			ticks:    4,
			expected: true,
		},
		{
			name: "linear not yet done",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(once()).
					SetMovement(motion.Linear(core.PosAt(0, 0), core.PosAt(20, 0), 1))
			},
			ticks:    10,
			expected: false,
		},
		{
			name: "stationary static decoration",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(anim.Static(anim.NewFrame("#"))).
					SetMovement(motion.Stationary(core.PosAt(1, 1), 0))
			},
			ticks:    1,
			expected: true,
		},
		{
			name: "stationary looping forever",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(loop()).
					SetMovement(motion.Stationary(core.PosAt(1, 1), 0))
			},
			ticks:    50,
			expected: false,
		},
		{
			name: "stationary ttl expires",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(loop()).
					SetMovement(motion.Stationary(core.PosAt(1, 1), 5))
			},
			ticks:    6,
			expected: true,
		},
		{
			name: "stationary animation ends",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(once()).
					SetMovement(motion.Stationary(core.PosAt(1, 1), 0))
			},
			ticks:    5,
			expected: true,
		},
		{
			name: "none follows animation",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(once())
			},
			ticks:    2,
			expected: false,
		},
		{
			name: "invisible never done",
			build: func() *Object {
				return NewObject(1, "o", 0).SetAnimation(anim.Static(anim.NewFrame("#"))).
					SetMovement(motion.Stationary(core.PosAt(1, 1), 0)).SetVisible(false)
			},
			ticks:    1,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := tc.build()
			w := NewWorld(o)
			w.ComputePaths(term)
			for tick := 0; tick < tc.ticks; tick++ {
				o.Advance(tick)
			}
			if o.Done() != tc.expected {
				t.Errorf("Done() = %v, expected %v", o.Done(), tc.expected)
			}
		})
	}
}

func TestObjectAdvanceFeedsMovementBased(t *testing.T) {
	term := core.NewSize(30, 30)
	frames := []anim.Frame{anim.NewFrame("1"), anim.NewFrame("2"), anim.NewFrame("3")}
	o := NewObject(1, "walker", 0).
		SetAnimation(anim.MovementBased(frames, 0, true)).
		SetMovement(motion.Linear(core.PosAt(0, 0), core.PosAt(5, 0), 2))
	NewWorld(o).ComputePaths(term)

	// Path holds each point for two ticks; the first tick only starts it
	indexes := make([]int, 0, 6)
	for tick := 0; tick < 6; tick++ {
		o.Advance(tick)
		indexes = append(indexes, o.Animation().Index())
	}
	expected := []int{0, 1, 1, 2, 2, 0}
	for i := range expected {
		if indexes[i] != expected[i] {
			t.Fatalf("frame indexes = %v, expected %v", indexes, expected)
		}
	}
}

func TestObjectLayers(t *testing.T) {
	o := NewObject(1, "stack", 0)
	o.AddLayer(anim.Static(anim.NewFrame("ab")))
	o.AddLayer(anim.Static(anim.NewFrame("x\ny\nz")))

	if len(o.Layers()) != 2 {
		t.Fatalf("len(Layers()) = %d, expected 2", len(o.Layers()))
	}
	if o.Size() != core.NewSize(2, 3) {
		t.Errorf("Size() = %v, expected 2x3", o.Size())
	}
	// Collider comes from the first layer only
	if o.Collider().Size != core.NewSize(2, 1) {
		t.Errorf("collider = %v, expected 2x1", o.Collider().Size)
	}
}

func TestObjectKeys(t *testing.T) {
	o := NewObject(1, "o", 0)
	called := false
	o.OnKey(core.RuneKey('l'), func(*Context, ObjectID) { called = true })

	if _, ok := o.Action(core.RuneKey('h')); ok {
		t.Error("unexpected binding for 'h'")
	}
	action, ok := o.Action(core.RuneKey('l'))
	if !ok {
		t.Fatal("missing binding for 'l'")
	}
	action(nil, o.ID())
	if !called {
		t.Error("action not invoked")
	}
}
