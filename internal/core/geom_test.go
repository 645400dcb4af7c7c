package core

import "testing"

func TestCoordsAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coords
		expected Coords
	}{
		{"zero", C(0, 0), C(0, 0), C(0, 0)},
		{"positive", C(4, 5), C(3, 3), C(7, 8)},
		{"negative", C(4, 5), C(-6, -1), C(-2, 4)},
		{"layer", Coords{X: 1, Y: 1, Z: 2}, Coords{Z: 3}, Coords{X: 1, Y: 1, Z: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Add(tc.b)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectCorners(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Min() != C(5, 10) {
		t.Errorf("Min() = %v, expected (5, 10)", r.Min())
	}
	if r.Max() != C(25, 25) {
		t.Errorf("Max() = %v, expected (25, 25)", r.Max())
	}
}

func TestSizeIsZero(t *testing.T) {
	if !NewSize(0, 0).IsZero() {
		t.Error("0x0 should be zero")
	}
	if NewSize(0, 1).IsZero() {
		t.Error("0x1 should not be zero")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(9) != 1 {
		t.Error("Sign returned a wrong value")
	}
}
