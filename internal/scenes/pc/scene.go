// Package pc shows data packets hopping across a motherboard: from the
// network port through the chipset, RAM, L2 cache and CPU and back out to
// disk. Each hop is revealed and retired by how long a packet has been
// touching the next stop.
package pc

import (
	"fmt"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
	"github.com/vovakirdan/coretilus/internal/registry"
)

// Object kinds.
const (
	KindPacket      engine.Kind = 14
	KindChipset     engine.Kind = 20
	KindRAM         engine.Kind = 21
	KindCache       engine.Kind = 22
	KindCPU         engine.Kind = 23
	KindMotherboard engine.Kind = 50
)

func init() {
	registry.Register(registry.Scene{
		ID:      "pc",
		Title:   "Motherboard",
		Summary: "data packets travel between chips",
		Build:   Build,
	})
}

type direction int

const (
	down direction = iota
	up
	right
	left
)

func (d direction) art() [5]string {
	switch d {
	case up:
		return packetUp
	case right:
		return packetRight
	case left:
		return packetLeft
	default:
		return packetDown
	}
}

// size is the packet footprint at full length.
func (d direction) size() core.Size {
	if d == right || d == left {
		return core.NewSize(3, 1)
	}
	return core.NewSize(1, 3)
}

// route is one hop of the journey.
type route struct {
	from, to core.Coords
	dir      direction
}

// distance is the number of cells the packet moves.
func (r route) distance() int {
	return max(abs(r.to.X-r.from.X), abs(r.to.Y-r.from.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var routes = [...]route{
	{core.C(36, 30), core.C(36, 20), down},  // network down the bus
	{core.C(34, 22), core.C(66, 22), right}, // to the chipset
	{core.C(68, 22), core.C(68, 19), down},  // into the chipset
	{core.C(68, 15), core.C(68, 10), down},  // chipset to RAM
	{core.C(78, 10), core.C(78, 21), up},    // RAM to cache
	{core.C(76, 32), core.C(58, 32), left},  // cache to CPU
	{core.C(61, 32), core.C(61, 28), down},  // into the CPU
	{core.C(68, 28), core.C(68, 32), up},    // out of the CPU
	{core.C(66, 32), core.C(78, 32), right}, // back to cache
	{core.C(78, 21), core.C(78, 10), down},  // cache to RAM
	{core.C(68, 10), core.C(68, 16), up},    // RAM to chipset
	{core.C(68, 19), core.C(68, 22), up},    // out of the chipset
	{core.C(65, 22), core.C(20, 22), left},  // along the bus
	{core.C(23, 20), core.C(23, 31), up},    // up to disk
}

// packetFrames stretches the full-length frame so the packet shrinks
// exactly as it arrives.
func packetFrames(d direction, distance int) []anim.Frame {
	art := d.art()
	contents := []string{art[0], art[1]}
	for range max(distance-3, 0) {
		contents = append(contents, art[2])
	}
	contents = append(contents, art[3], art[4])
	return anim.NewFrames(contents...)
}

func newPacket(i int, r route, speed int) *engine.Object {
	return engine.NewObject(KindPacket, fmt.Sprintf("data%d", i+1), 11+i).
		SetCollider(engine.NewCollider(core.Coords{}, r.dir.size())).
		SetAnimation(anim.MovementBased(packetFrames(r.dir, r.distance()), 0, false)).
		SetMovement(motion.Linear(core.PosAt(r.from.X, r.from.Y), core.PosAt(r.to.X, r.to.Y), speed)).
		SetVisible(i == 0)
}

func newChip(kind engine.Kind, name, art string, x, y int) *engine.Object {
	return engine.NewObject(kind, name, 100).
		SetAnimation(anim.Static(anim.NewFrame(art))).
		SetMovement(motion.Stationary(core.PosAt(x, y), 0))
}

// rule fires once the collision counter reaches at; at zero it fires on
// every hit.
type rule struct {
	at   int
	show []engine.ObjectID
	hide []engine.ObjectID
}

func relay(speed int, rules ...rule) engine.CollisionFunc {
	return func(ctx *engine.Context, _, _ engine.ObjectID, count int) {
		for _, r := range rules {
			if r.at != 0 && count != r.at*speed {
				continue
			}
			ctx.Show(r.show...)
			ctx.Hide(r.hide...)
		}
	}
}

func ids(objs ...*engine.Object) []engine.ObjectID {
	out := make([]engine.ObjectID, len(objs))
	for i, o := range objs {
		out[i] = o.ID()
	}
	return out
}

// Build lays out the board and chains the packets. Every hop is a
// collision between a packet and the next stop; thresholds are multiples of
// the speed, so they scale with the time spent per cell.
func Build(p registry.Params) (*registry.Build, error) {
	s := p.Config.Pc.Speed
	w := engine.NewWorld()

	board := engine.NewObject(KindMotherboard, "Motherboard", 1).
		SetAnimation(anim.TickBased(anim.NewFrames(motherboardArt), 0, 1, 50, true)).
		SetMovement(motion.Stationary(core.PosAt(2, 1), 0))
	chipset := newChip(KindChipset, "Chipset", chipsetArt, 62, 16)
	ram := newChip(KindRAM, "Ram", ramArt, 49, 10)
	cache := newChip(KindCache, "Cache L2", cacheArt, 78, 22)
	cpu := newChip(KindCPU, "CPU", cpuArt, 58, 23)
	w.Add(board, chipset, ram, cache, cpu)

	// d[0] is data1
	d := make([]*engine.Object, len(routes))
	for i, r := range routes {
		d[i] = newPacket(i, r, s)
		w.Add(d[i])
	}

	collisions := []*engine.Collision{
		engine.NewPairCollision(d[0].ID(), d[1].ID(), relay(s,
			rule{at: 0, show: ids(d[1])},
			rule{at: 2, hide: ids(d[0])},
		)),
		engine.NewPairCollision(d[1].ID(), d[2].ID(), relay(s,
			rule{at: 2, show: ids(d[2])},
			rule{at: 4, hide: ids(d[1])},
		)),
		engine.NewPairCollision(d[2].ID(), chipset.ID(), relay(s,
			rule{at: 1, show: ids(d[3])},
			rule{at: 3, hide: ids(d[2])},
		)),
		engine.NewPairCollision(d[3].ID(), ram.ID(), relay(s,
			rule{at: 2, show: ids(d[4]), hide: ids(d[3])},
		)),
		engine.NewPairCollision(d[4].ID(), cache.ID(), relay(s,
			rule{at: 2, show: ids(d[5])},
			rule{at: 3, hide: ids(d[4])},
		)),
		engine.NewPairCollision(d[5].ID(), d[6].ID(), relay(s,
			rule{at: 2, show: ids(d[6])},
			rule{at: 4, show: ids(d[7]), hide: ids(d[5])},
		)),
		engine.NewPairCollision(d[7].ID(), d[8].ID(), relay(s,
			rule{at: 1, show: ids(d[8])},
			rule{at: 2, hide: ids(d[7])},
		)),
		engine.NewPairCollision(d[8].ID(), cache.ID(), relay(s,
			rule{at: 2, show: ids(d[9])},
			rule{at: 3, hide: ids(d[8])},
		)),
		engine.NewPairCollision(d[9].ID(), ram.ID(), relay(s,
			rule{at: 2, show: ids(d[10]), hide: ids(d[9])},
		)),
		engine.NewPairCollision(d[10].ID(), chipset.ID(), relay(s,
			rule{at: 1, show: ids(d[11])},
			rule{at: 2, show: ids(d[12])},
			rule{at: 3, hide: ids(d[10])},
			rule{at: 4, hide: ids(d[11])},
		)),
		engine.NewPairCollision(d[12].ID(), d[13].ID(), relay(s,
			rule{at: 1, show: ids(d[13])},
			rule{at: 3, hide: ids(d[12])},
		)),
	}

	return &registry.Build{World: w, Collisions: collisions}, nil
}
