package engine

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/motion"
)

// World owns every object of a scene. Objects refer to each other by id
// only; access to a single object is exclusive while it is borrowed through
// With.
type World struct {
	objects  map[ObjectID]*Object
	order    []ObjectID
	borrowed map[ObjectID]bool
}

// NewWorld creates a world holding the given objects, in insertion order.
func NewWorld(objs ...*Object) *World {
	w := &World{
		objects:  make(map[ObjectID]*Object),
		borrowed: make(map[ObjectID]bool),
	}
	w.Add(objs...)
	return w
}

// Add inserts objects. Adding the same object twice panics.
func (w *World) Add(objs ...*Object) {
	for _, o := range objs {
		if _, exists := w.objects[o.id]; exists {
			panic(fmt.Sprintf("engine: object %s already in world", o))
		}
		w.objects[o.id] = o
		w.order = append(w.order, o.id)
	}
}

// Len returns the number of objects.
func (w *World) Len() int {
	return len(w.order)
}

// IDs returns object ids in insertion order.
func (w *World) IDs() []ObjectID {
	ids := make([]ObjectID, len(w.order))
	copy(ids, w.order)
	return ids
}

// Get looks up an object. Looking up an object that is currently borrowed
// panics.
func (w *World) Get(id ObjectID) (*Object, bool) {
	o, ok := w.objects[id]
	if ok && w.borrowed[id] {
		panic(fmt.Sprintf("engine: object %s is borrowed", o))
	}
	return o, ok
}

// MustGet looks up an object that must exist.
func (w *World) MustGet(id ObjectID) *Object {
	o, ok := w.Get(id)
	if !ok {
		panic(fmt.Sprintf("engine: unknown object %s", id))
	}
	return o
}

// With runs fn with exclusive access to the object. Borrowing an object
// that is already borrowed panics.
func (w *World) With(id ObjectID, fn func(o *Object)) {
	o := w.MustGet(id)
	if w.borrowed[id] {
		panic(fmt.Sprintf("engine: object %s is already borrowed", o))
	}
	w.borrowed[id] = true
	defer delete(w.borrowed, id)
	fn(o)
}

// Borrowed reports whether the object is inside a With call.
func (w *World) Borrowed(id ObjectID) bool {
	return w.borrowed[id]
}

// Objects returns all objects in insertion order.
func (w *World) Objects() []*Object {
	objs := make([]*Object, 0, len(w.order))
	for _, id := range w.order {
		objs = append(objs, w.objects[id])
	}
	return objs
}

// FindByKind returns every object of the kind, in insertion order.
func (w *World) FindByKind(kind Kind) []*Object {
	var objs []*Object
	for _, id := range w.order {
		if o := w.objects[id]; o.kind == kind {
			objs = append(objs, o)
		}
	}
	return objs
}

// FirstByKind returns the first object of the kind.
func (w *World) FirstByKind(kind Kind) (*Object, bool) {
	for _, id := range w.order {
		if o := w.objects[id]; o.kind == kind {
			return o, true
		}
	}
	return nil, false
}

// FindByName returns the first object with the given name.
func (w *World) FindByName(name string) (*Object, bool) {
	for _, id := range w.order {
		if o := w.objects[id]; o.name == name {
			return o, true
		}
	}
	return nil, false
}

// Coords returns the on-screen coordinate of an object. Relative objects sit
// at their parent's coordinate plus their offset.
func (w *World) Coords(id ObjectID) core.Coords {
	return w.coords(id, 0)
}

func (w *World) coords(id ObjectID, depth int) core.Coords {
	if depth > len(w.order) {
		panic("engine: relative movements form a cycle")
	}
	o, ok := w.objects[id]
	if !ok {
		panic(fmt.Sprintf("engine: unknown object %s", id))
	}
	m := o.movement
	if parent, ok := m.Parent(); ok {
		return w.coords(parent, depth+1).Add(m.Offset())
	}
	return m.Current()
}

// Invalidate marks every path for recomputation.
func (w *World) Invalidate() {
	for _, o := range w.objects {
		o.movement.Invalidate()
	}
}

// ComputePaths recomputes pending paths against the terminal size. A
// relative path is rebuilt after its parent, and again whenever the parent
// was rebuilt. It returns the number of recomputed paths.
func (w *World) ComputePaths(terminal core.Size) int {
	recomputed := make(map[ObjectID]bool)
	visiting := make(map[ObjectID]bool)
	n := 0
	for _, id := range w.order {
		if w.computePath(id, terminal, recomputed, visiting) {
			n++
		}
	}
	return n
}

// computePath reports whether the object's path was rebuilt in this pass.
func (w *World) computePath(id ObjectID, terminal core.Size, recomputed, visiting map[ObjectID]bool) bool {
	if done, seen := recomputed[id]; seen {
		return done
	}
	if visiting[id] {
		panic("engine: relative movements form a cycle")
	}
	visiting[id] = true
	defer delete(visiting, id)

	o := w.objects[id]
	m := o.movement
	rebuilt := false
	if m.Kind() == motion.KindRelative {
		parent, ok := m.Parent()
		if !ok {
			// Let the movement report the missing parent
			m.ComputeRelativePath(nil)
		}
		p, exists := w.objects[parent]
		if !exists {
			panic(fmt.Sprintf("engine: %s follows unknown object %s", o, parent))
		}
		parentRebuilt := w.computePath(parent, terminal, recomputed, visiting)
		if m.Pending() || parentRebuilt {
			m.ComputeRelativePath(p.movement.Path())
			rebuilt = true
		}
	} else if m.Pending() {
		m.ComputePath(terminal, o.Size())
		rebuilt = true
	}
	recomputed[id] = rebuilt
	return rebuilt
}

// drawOrder returns visible objects sorted by draw layer, insertion order
// breaking ties.
func (w *World) drawOrder() []*Object {
	objs := make([]*Object, 0, len(w.order))
	for _, id := range w.order {
		if o := w.objects[id]; o.visible {
			objs = append(objs, o)
		}
	}
	sort.SliceStable(objs, func(i, j int) bool {
		return w.depth(objs[i]) < w.depth(objs[j])
	})
	return objs
}

// depth is the effective z-order: the draw layer plus the path layer.
func (w *World) depth(o *Object) int {
	return o.drawLayer + o.movement.Current().Z
}
