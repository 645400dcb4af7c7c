// Package gb is a handheld console dropping tetrominoes: each shape falls
// into the screen, can be nudged sideways, and lands on the floor or on a
// shape that already landed, releasing the next one.
package gb

import (
	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
	"github.com/vovakirdan/coretilus/internal/registry"
)

// Object kinds. Shapes use KindShape plus their index in shapeArt.
const (
	KindFloor    engine.Kind = 9
	KindGameboy  engine.Kind = 50
	KindShape    engine.Kind = 61
	kindShapeEnd             = KindShape + engine.Kind(len(shapeArt))
)

// Screen window of the console, in terminal coordinates.
const (
	screenLeft  = 10
	screenWidth = 29
	floorY      = 22
	dropX       = 22
	dropY       = 32
	nudgeStep   = 2
)

func init() {
	registry.Register(registry.Scene{
		ID:      "gb",
		Title:   "Game Boy",
		Summary: "tetrominoes fall into a handheld console",
		Build:   Build,
	})
}

// IsShape reports whether kind is one of the falling shapes.
func IsShape(kind engine.Kind) bool {
	return kind >= KindShape && kind < kindShapeEnd
}

func newGameboy() *engine.Object {
	return engine.NewObject(KindGameboy, "Gameboy", 100).
		SetAnimation(anim.TickBased(anim.NewFrames(gameboyArt), 0, 1, 50, true)).
		SetMovement(motion.Stationary(core.PosAt(0, 0), 0))
}

func newFloor() *engine.Object {
	return engine.NewObject(KindFloor, "GB bottom", 1).
		SetAnimation(anim.Static(anim.NewFrame(floorArt))).
		SetMovement(motion.Stationary(core.PosAt(screenLeft, floorY), 0))
}

func newShape(i int, speed int) *engine.Object {
	o := engine.NewObject(KindShape+engine.Kind(i), "Tetris "+shapeNames[i], 10).
		SetAnimation(anim.TickBased(anim.NewFrames(shapeArt[i]), 0, 1, 50, true)).
		SetMovement(motion.Linear(core.PosAt(dropX, dropY), core.PosAt(dropX, floorY), speed))
	o.Collider().Active = false
	return o
}

// stack tracks which shapes already landed, in drop order.
type stack struct {
	shapes []engine.ObjectID
	landed []bool
}

// falling returns the shape currently in the air.
func (s *stack) falling(ctx *engine.Context) (engine.ObjectID, bool) {
	for i, id := range s.shapes {
		if s.landed[i] {
			continue
		}
		if o := ctx.Object(id); o.Visible() && !o.Movement().Done() {
			return id, true
		}
	}
	return engine.ObjectID{}, false
}

// land marks shape i as landed and drops the next one.
func (s *stack) land(ctx *engine.Context, i int) {
	s.landed[i] = true
	if i+1 >= len(s.shapes) {
		return
	}
	ctx.With(s.shapes[i+1], func(o *engine.Object) {
		o.SetVisible(true)
		o.Collider().Active = true
		o.Movement().ResetOffset()
	})
}

// nudge moves the falling shape sideways, keeping it inside the screen.
func (s *stack) nudge(dx int) engine.KeyAction {
	return func(ctx *engine.Context, _ engine.ObjectID) {
		id, ok := s.falling(ctx)
		if !ok {
			return
		}
		ctx.With(id, func(o *engine.Object) {
			m := o.Movement()
			off := m.Offset()
			x := core.Clamp(dropX+off.X+dx, screenLeft, screenLeft+screenWidth-o.Size().W)
			m.SetOffset(core.C(x-dropX, off.Y))
		})
	}
}

// Build drops Gb.Shapes random tetrominoes, one at a time. Keys are bound
// on the console and steer whichever shape is falling.
func Build(p registry.Params) (*registry.Build, error) {
	rng := p.Rand()
	w := engine.NewWorld()
	st := &stack{}

	gameboy := newGameboy()
	floor := newFloor()

	for i := range p.Config.Gb.Shapes {
		shape := newShape(rng.Intn(len(shapeArt)), p.Config.Gb.Speed)
		if i > 0 {
			shape.SetVisible(false)
		} else {
			shape.Collider().Active = true
		}
		w.Add(shape)
		st.shapes = append(st.shapes, shape.ID())
	}
	st.landed = make([]bool, len(st.shapes))

	gameboy.
		OnKey(core.RuneKey('d'), st.nudge(nudgeStep)).
		OnKey(core.SpecialKey(core.KeyRight), st.nudge(nudgeStep)).
		OnKey(core.RuneKey('a'), st.nudge(-nudgeStep)).
		OnKey(core.SpecialKey(core.KeyLeft), st.nudge(-nudgeStep))
	w.Add(gameboy, floor)

	var collisions []*engine.Collision
	for k, id := range st.shapes {
		// Landing on the floor
		collisions = append(collisions, engine.NewPairCollision(id, floor.ID(),
			func(ctx *engine.Context, _, _ engine.ObjectID, _ int) {
				if !st.landed[k] {
					st.land(ctx, k)
				}
			}))

		// Landing on an earlier shape: stop one row above it
		for n := k + 1; n < len(st.shapes); n++ {
			collisions = append(collisions, engine.NewPairCollision(id, st.shapes[n],
				func(ctx *engine.Context, _, b engine.ObjectID, _ int) {
					if !st.landed[k] || st.landed[n] {
						return
					}
					at := ctx.World().Coords(b)
					ctx.With(b, func(o *engine.Object) {
						o.SetMovement(motion.Stationary(core.PosAt(at.X, at.Y+1), 0))
					})
					st.land(ctx, n)
				}))
		}
	}

	return &registry.Build{World: w, Collisions: collisions}, nil
}
