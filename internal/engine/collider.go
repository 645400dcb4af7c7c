package engine

import "github.com/vovakirdan/coretilus/internal/core"

// Collider is an axis-aligned box placed relative to its owner's coordinate.
type Collider struct {
	Offset core.Coords
	Size   core.Size
	Active bool
}

// NewCollider creates an active collider.
func NewCollider(offset core.Coords, size core.Size) Collider {
	return Collider{Offset: offset, Size: size, Active: true}
}

// IsNull reports whether the collider has no extent. A null collider is
// replaced by the frame bounds when its owner gets an animation.
func (c Collider) IsNull() bool {
	return c.Size.IsZero()
}

// Rect returns the collider box for an owner at pos.
func (c Collider) Rect(pos core.Coords) core.Rect {
	return core.NewRect(pos.X+c.Offset.X, pos.Y+c.Offset.Y, c.Size.W, c.Size.H)
}

// overlaps is the pairwise hit test. The x axis accepts touching edges on
// one side only while the y axis is strict on both; scenes rely on it.
func overlaps(aMin, aMax, bMin, bMax core.Coords) bool {
	return aMin.X <= bMax.X &&
		aMax.X > bMin.X &&
		aMin.Y < bMax.Y &&
		aMax.Y > bMin.Y
}
