// Package core provides the geometry, screen buffer and input types shared by
// the animation engine and its terminal backends.
// It contains no terminal dependencies so that simulation code stays pure
// and testable.
package core

import "fmt"

// Coords is an integer point in terminal space.
// X grows to the right, Y grows upwards from the bottom row, Z is a layer
// offset carried through path generation.
type Coords struct {
	X, Y, Z int
}

// C is shorthand for a 2D coordinate on layer 0.
func C(x, y int) Coords {
	return Coords{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (c Coords) Add(other Coords) Coords {
	return Coords{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// String formats the coordinate for logs and test failures.
func (c Coords) String() string {
	if c.Z != 0 {
		return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
	}
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Size is a width/height pair, used both for the terminal and for occupants.
type Size struct {
	W, H int
}

// NewSize creates a size with the given dimensions.
func NewSize(w, h int) Size {
	return Size{W: w, H: h}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Rect represents an axis-aligned box given by its min corner and size.
type Rect struct {
	X, Y int // Min corner (bottom-left in terminal space)
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Min returns the min corner.
func (r Rect) Min() Coords {
	return Coords{X: r.X, Y: r.Y}
}

// Max returns the corner opposite to Min (exclusive bounds).
func (r Rect) Max() Coords {
	return Coords{X: r.X + r.W, Y: r.Y + r.H}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1 following the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
