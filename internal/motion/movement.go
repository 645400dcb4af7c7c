package motion

import (
	"fmt"

	"github.com/vovakirdan/coretilus/internal/core"
)

// Kind is the directional policy of a movement.
type Kind uint8

const (
	KindNone       Kind = iota // Placeholder, sits at the origin
	KindLinear                 // Straight line between two positions
	KindStationary             // One point, optionally for a limited time
	KindRelative               // Follows a parent entity at a fixed offset
	KindCircular               // Arc between two positions
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindLinear:
		return "Linear"
	case KindStationary:
		return "Stationary"
	case KindRelative:
		return "Relative"
	case KindCircular:
		return "Circular"
	default:
		return "Unknown"
	}
}

// Movement produces the coordinate an entity occupies on every tick.
// The path only changes when it is recomputed, which happens once it is
// marked pending (on creation, on offset changes and on terminal resize).
type Movement struct {
	kind   Kind
	start  core.Position
	end    core.Position
	speed  int // Ticks each path point is held; lower is faster
	radius int // Arc height for KindCircular
	ttl    int // Ticks to live for KindStationary, 0 = forever

	parent     core.ObjectID
	baseOffset core.Coords
	offset     core.Coords

	path        []core.Coords
	cursor      int
	started     bool
	startedTick int
	done        bool
	pending     bool
}

// None returns a placeholder movement that keeps its owner at the origin.
func None() *Movement {
	return &Movement{kind: KindNone, pending: true}
}

// Linear returns a movement along a straight line from start to end,
// holding every point for speed ticks.
func Linear(start, end core.Position, speed int) *Movement {
	mustSpeed(speed)
	return &Movement{
		kind:    KindLinear,
		start:   start,
		end:     end,
		speed:   speed,
		pending: true,
	}
}

// Stationary returns a movement that stays at pos. A ttl > 0 makes it done
// that many ticks after its first advance.
func Stationary(pos core.Position, ttl int) *Movement {
	if ttl < 0 {
		panic(fmt.Sprintf("motion: negative ttl %d", ttl))
	}
	return &Movement{
		kind:    KindStationary,
		start:   pos,
		end:     pos,
		ttl:     ttl,
		pending: true,
	}
}

// Circular returns a movement along an arc from start to end whose middle is
// lifted by radius rows.
func Circular(start, end core.Position, speed, radius int) *Movement {
	mustSpeed(speed)
	return &Movement{
		kind:    KindCircular,
		start:   start,
		end:     end,
		speed:   speed,
		radius:  radius,
		pending: true,
	}
}

// Relative returns a movement that follows parent, shifted by offset.
func Relative(parent core.ObjectID, offset core.Coords) *Movement {
	return &Movement{
		kind:       KindRelative,
		start:      core.Pos(core.LeftOut, core.BottomOut),
		end:        core.Pos(core.LeftOut, core.BottomOut),
		parent:     parent,
		baseOffset: offset,
		offset:     offset,
		pending:    true,
	}
}

func mustSpeed(speed int) {
	if speed < 1 {
		panic(fmt.Sprintf("motion: speed must be at least 1, got %d", speed))
	}
}

// Kind returns the directional policy.
func (m *Movement) Kind() Kind { return m.kind }

// Speed returns the ticks held per path point.
func (m *Movement) Speed() int { return m.speed }

// Radius returns the arc height.
func (m *Movement) Radius() int { return m.radius }

// TTL returns the stationary time to live.
func (m *Movement) TTL() int { return m.ttl }

// Start returns the symbolic start position.
func (m *Movement) Start() core.Position { return m.start }

// End returns the symbolic end position.
func (m *Movement) End() core.Position { return m.end }

// Parent returns the followed entity, if any.
func (m *Movement) Parent() (core.ObjectID, bool) {
	return m.parent, m.kind == KindRelative && !m.parent.IsZero()
}

// Offset returns the accumulated offset added to every path point.
func (m *Movement) Offset() core.Coords { return m.offset }

// AddOffset nudges the movement and marks the path for recomputation.
func (m *Movement) AddOffset(delta core.Coords) {
	m.offset = m.offset.Add(delta)
	m.pending = true
}

// SetOffset replaces the accumulated offset.
func (m *Movement) SetOffset(offset core.Coords) {
	m.offset = offset
	m.pending = true
}

// ResetOffset drops all nudges, restoring the construction offset.
func (m *Movement) ResetOffset() {
	m.offset = m.baseOffset
	m.pending = true
}

// Pending reports whether the path must be recomputed before use.
func (m *Movement) Pending() bool { return m.pending }

// Invalidate marks the path for recomputation, e.g. after a resize.
func (m *Movement) Invalidate() { m.pending = true }

// Path returns the computed path. The slice must not be modified.
func (m *Movement) Path() []core.Coords { return m.path }

// Done reports whether the movement finished.
func (m *Movement) Done() bool { return m.done }

// Started reports whether Advance was called since creation or Reset.
func (m *Movement) Started() bool { return m.started }

// ComputePath resolves the positions against the terminal and the occupant
// size and rebuilds the path. Relative movements need their parent's path and
// go through ComputeRelativePath instead.
func (m *Movement) ComputePath(terminal, occupant core.Size) {
	var path []core.Coords
	switch m.kind {
	case KindLinear:
		from := m.start.Resolve(terminal, occupant)
		to := m.end.Resolve(terminal, occupant)
		path = replicate(linePath(from, to), m.speed)
	case KindCircular:
		from := m.start.Resolve(terminal, occupant)
		to := m.end.Resolve(terminal, occupant)
		path = replicate(arcPath(from, to, m.radius), m.speed)
	case KindStationary:
		at := m.start.Resolve(terminal, occupant)
		if m.ttl > 0 {
			path = stationaryPath(at, m.ttl)
		} else {
			path = []core.Coords{at}
		}
	case KindRelative:
		m.mustParent()
		panic("motion: relative movement must be computed from its parent path")
	case KindNone:
		path = nil
	}
	shift(path, m.offset)
	m.path = path
	m.pending = false
}

// ComputeRelativePath rebuilds a relative path from the parent's freshly
// computed path.
func (m *Movement) ComputeRelativePath(parentPath []core.Coords) {
	if m.kind != KindRelative {
		panic(fmt.Sprintf("motion: ComputeRelativePath on %s movement", m.kind))
	}
	m.mustParent()
	path := make([]core.Coords, len(parentPath))
	copy(path, parentPath)
	shift(path, m.offset)
	m.path = path
	m.pending = false
}

func (m *Movement) mustParent() {
	if m.parent.IsZero() {
		panic("motion: relative movement has no parent")
	}
}

// CoordsAt returns the coordinate for the given tick. Before the first
// advance it is the first path point; afterwards the point at the elapsed
// tick count, frozen on the last point once the path is exhausted.
func (m *Movement) CoordsAt(tick int) core.Coords {
	if len(m.path) == 0 {
		return core.Coords{}
	}
	if m.kind == KindStationary || !m.started {
		return m.path[0]
	}
	i := tick - m.startedTick
	if i < 0 {
		i = 0
	}
	if i >= len(m.path) {
		return m.path[len(m.path)-1]
	}
	return m.path[i]
}

// Current returns the coordinate under the cursor, which moves one step per
// advance.
func (m *Movement) Current() core.Coords {
	if len(m.path) == 0 {
		return core.Coords{}
	}
	return m.path[min(m.cursor, len(m.path)-1)]
}

// Advance moves the cursor and updates the done state. A relative movement
// is finished through Follow, from the coordinate it is drawn at.
func (m *Movement) Advance(tick int) {
	if !m.started {
		m.started = true
		m.startedTick = tick
	}
	m.cursor++
	elapsed := tick - m.startedTick

	switch m.kind {
	case KindStationary:
		if m.ttl > 0 && elapsed >= m.ttl {
			m.done = true
		}
	case KindLinear, KindCircular:
		m.done = elapsed >= len(m.path)
	}
}

// Follow takes the resolved coordinate of a relative movement, its parent's
// current coordinate plus the offset. The movement is done once an occupant
// at that coordinate is entirely outside the terminal. Other kinds ignore it.
func (m *Movement) Follow(at core.Coords, terminal, occupant core.Size) {
	if m.kind == KindRelative && m.started && offscreen(at, terminal, occupant) {
		m.done = true
	}
}

// offscreen reports whether an occupant at c is entirely outside the terminal.
func offscreen(c core.Coords, terminal, occupant core.Size) bool {
	return c.X >= terminal.W || c.Y >= terminal.H ||
		c.X <= -occupant.W || c.Y <= -occupant.H
}

// Reset rewinds the movement to the start of its path.
func (m *Movement) Reset() {
	m.cursor = 0
	m.started = false
	m.startedTick = 0
	m.done = false
}
