package engine

import (
	"fmt"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/motion"
)

// ObjectID identifies an object inside a World.
type ObjectID = core.ObjectID

// Kind classifies objects so callbacks can find siblings at runtime
// (e.g. "the spaceport", "every falling shape").
type Kind uint64

// KeyAction runs when a bound key is pressed. It receives only the id of the
// object it is bound to and looks everything up through ctx.
type KeyAction func(ctx *Context, self ObjectID)

// Object is one entity of a scene: one movement, ordered visual layers and a
// collider.
type Object struct {
	id        ObjectID
	kind      Kind
	name      string
	movement  *motion.Movement
	layers    []*anim.Animation
	collider  Collider
	visible   bool
	drawLayer int
	keys      map[core.KeyEvent]KeyAction
}

// NewObject creates a visible object at the origin with no layers.
func NewObject(kind Kind, name string, drawLayer int) *Object {
	return &Object{
		id:        core.NewObjectID(),
		kind:      kind,
		name:      name,
		movement:  motion.None(),
		collider:  Collider{Active: true},
		visible:   true,
		drawLayer: drawLayer,
	}
}

func (o *Object) ID() ObjectID   { return o.id }
func (o *Object) Kind() Kind     { return o.kind }
func (o *Object) Name() string   { return o.name }
func (o *Object) Visible() bool  { return o.visible }
func (o *Object) DrawLayer() int { return o.drawLayer }

// String formats the object for logs.
func (o *Object) String() string {
	return fmt.Sprintf("%s#%s", o.name, o.id.Short())
}

// SetVisible shows or hides the object. Hidden objects are neither advanced
// nor drawn and never hold a scene open.
func (o *Object) SetVisible(v bool) *Object {
	o.visible = v
	return o
}

// SetDrawLayer changes the z-order.
func (o *Object) SetDrawLayer(layer int) *Object {
	o.drawLayer = layer
	return o
}

// Movement returns the object's movement.
func (o *Object) Movement() *motion.Movement {
	return o.movement
}

// SetMovement replaces the movement. The new path is computed on the next tick.
func (o *Object) SetMovement(m *motion.Movement) *Object {
	o.movement = m
	m.Invalidate()
	return o
}

// Layers returns the animation layers, bottom first.
func (o *Object) Layers() []*anim.Animation {
	return o.layers
}

// Animation returns the first layer, or nil if there is none.
func (o *Object) Animation() *anim.Animation {
	if len(o.layers) == 0 {
		return nil
	}
	return o.layers[0]
}

// SetAnimation replaces the first layer. A null collider is derived from the
// animation's largest frame.
func (o *Object) SetAnimation(a *anim.Animation) *Object {
	if len(o.layers) == 0 {
		o.layers = append(o.layers, a)
	} else {
		o.layers[0] = a
	}
	if o.collider.IsNull() {
		o.collider = Collider{Size: a.MaxSize(), Active: o.collider.Active}
	}
	return o
}

// AddLayer stacks another animation on top of the existing ones.
func (o *Object) AddLayer(a *anim.Animation) *Object {
	if len(o.layers) == 0 {
		return o.SetAnimation(a)
	}
	o.layers = append(o.layers, a)
	return o
}

// Collider returns the collider for in-place changes.
func (o *Object) Collider() *Collider {
	return &o.collider
}

// SetCollider replaces the collider; it is kept when layers change.
func (o *Object) SetCollider(c Collider) *Object {
	o.collider = c
	return o
}

// Size returns the largest frame bounds across all layers.
func (o *Object) Size() core.Size {
	var size core.Size
	for _, l := range o.layers {
		s := l.MaxSize()
		size.W = max(size.W, s.W)
		size.H = max(size.H, s.H)
	}
	return size
}

// OnKey binds an action to a key.
func (o *Object) OnKey(key core.KeyEvent, action KeyAction) *Object {
	if o.keys == nil {
		o.keys = make(map[core.KeyEvent]KeyAction)
	}
	o.keys[key] = action
	return o
}

// Action returns the action bound to key.
func (o *Object) Action(key core.KeyEvent) (KeyAction, bool) {
	a, ok := o.keys[key]
	return a, ok
}

// Advance steps the movement and every layer to tick. Layers see the
// coordinates of this tick and the next one, read before the movement moves.
func (o *Object) Advance(tick int) {
	prev := o.movement.CoordsAt(tick)
	next := o.movement.CoordsAt(tick + 1)
	o.movement.Advance(tick)
	for _, l := range o.layers {
		l.Advance(tick, &prev, &next)
	}
}

// Done reports whether the object lets the scene end.
func (o *Object) Done() bool {
	if !o.visible {
		return false
	}
	switch o.movement.Kind() {
	case motion.KindLinear, motion.KindCircular, motion.KindRelative:
		return o.movement.Done()
	case motion.KindStationary:
		if o.movement.Done() {
			return true
		}
		if a := o.Animation(); a != nil && a.Kind() == anim.KindStatic {
			return true
		}
		return o.layersDone()
	default:
		return o.layersDone()
	}
}

// layersDone reports whether every layer finished. Static layers never do.
func (o *Object) layersDone() bool {
	for _, l := range o.layers {
		if !l.Done() {
			return false
		}
	}
	return true
}
