package core

import "fmt"

// AnchorKind selects how an Anchor is resolved on its axis.
type AnchorKind uint8

const (
	AnchorAt      AnchorKind = iota // Literal offset from the near edge
	AnchorNearOut                   // Fully outside, before the near edge (left/bottom)
	AnchorNearIn                    // Flush inside the near edge
	AnchorMiddle                    // Centered, truncating division
	AnchorFarIn                     // Flush inside the far edge (right/top)
	AnchorFarOut                    // Just past the far edge
)

// String returns a human-readable name for the anchor kind.
func (k AnchorKind) String() string {
	switch k {
	case AnchorAt:
		return "At"
	case AnchorNearOut:
		return "NearOut"
	case AnchorNearIn:
		return "NearIn"
	case AnchorMiddle:
		return "Middle"
	case AnchorFarIn:
		return "FarIn"
	case AnchorFarOut:
		return "FarOut"
	default:
		return "Unknown"
	}
}

// Anchor is a symbolic position on one axis.
type Anchor struct {
	Kind AnchorKind
	N    int // Only used by AnchorAt
}

// At returns a literal anchor.
func At(n int) Anchor {
	return Anchor{Kind: AnchorAt, N: n}
}

// Symbolic anchors, named for each axis.
var (
	LeftOut  = Anchor{Kind: AnchorNearOut}
	LeftIn   = Anchor{Kind: AnchorNearIn}
	Middle   = Anchor{Kind: AnchorMiddle}
	RightIn  = Anchor{Kind: AnchorFarIn}
	RightOut = Anchor{Kind: AnchorFarOut}

	BottomOut = Anchor{Kind: AnchorNearOut}
	BottomIn  = Anchor{Kind: AnchorNearIn}
	TopIn     = Anchor{Kind: AnchorFarIn}
	TopOut    = Anchor{Kind: AnchorFarOut}
)

// Resolve returns the concrete offset of the anchor on an axis of length
// bound, for an occupant of length extent.
func (a Anchor) Resolve(bound, extent int) int {
	switch a.Kind {
	case AnchorAt:
		return a.N
	case AnchorNearOut:
		return -1 - extent
	case AnchorNearIn:
		return 0
	case AnchorMiddle:
		return (bound - extent) / 2
	case AnchorFarIn:
		return bound - extent
	case AnchorFarOut:
		return bound
	default:
		panic(fmt.Sprintf("core: unknown anchor kind %d", a.Kind))
	}
}

func (a Anchor) String() string {
	if a.Kind == AnchorAt {
		return fmt.Sprintf("At(%d)", a.N)
	}
	return a.Kind.String()
}

// Position is a pair of symbolic anchors plus a fixed layer.
type Position struct {
	X Anchor
	Y Anchor
	Z int
}

// Pos creates a position on layer 0.
func Pos(x, y Anchor) Position {
	return Position{X: x, Y: y}
}

// PosAt creates a literal position on layer 0.
func PosAt(x, y int) Position {
	return Position{X: At(x), Y: At(y)}
}

// Resolve returns the coordinate of an occupant of the given size placed at
// this position inside a terminal of the given size. It is pure.
func (p Position) Resolve(terminal, occupant Size) Coords {
	return Coords{
		X: p.X.Resolve(terminal.W, occupant.W),
		Y: p.Y.Resolve(terminal.H, occupant.H),
		Z: p.Z,
	}
}
