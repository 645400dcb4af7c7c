package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenBlitBottomUp(t *testing.T) {
	s := NewScreen(5, 4)
	s.Blit(1, 0, []string{"ab", "cd"})

	// Last line sits on the bottom row, first line above it
	if s.Row(3) != " cd  " {
		t.Errorf("Row(3) = %q, expected %q", s.Row(3), " cd  ")
	}
	if s.Row(2) != " ab  " {
		t.Errorf("Row(2) = %q, expected %q", s.Row(2), " ab  ")
	}
	if s.At(1, 1) != 'a' {
		t.Errorf("At(1, 1) = %q, expected 'a'", s.At(1, 1))
	}
}

func TestScreenBlitTransparentSpaces(t *testing.T) {
	s := NewScreen(5, 1)
	s.Blit(0, 0, []string{"xxxxx"})
	s.Blit(0, 0, []string{"o o o"})

	if s.Row(0) != "oxoxo" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "oxoxo")
	}
}

func TestScreenBlitClips(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"left", -3, 0},
		{"right", 4, 0},
		{"below", 0, -1},
		{"above", 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			// Should not panic
			s.Blit(tc.x, tc.y, []string{"#####", "#####"})
		})
	}

	s := NewScreen(5, 3)
	s.Blit(-3, 0, []string{"12345"})
	if s.Row(2) != "45   " {
		t.Errorf("left clip Row(2) = %q, expected %q", s.Row(2), "45   ")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.Blit(0, 2, []string{"AAAAA"})
	s.Blit(0, 1, []string{"BBBBB"})
	s.Blit(0, 0, []string{"CCCCC"})

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenFrame(t *testing.T) {
	s := NewScreen(3, 2)
	s.Blit(0, 0, []string{"top", "bot"})

	expected := "\x1b[Htopbot"
	if string(s.Frame()) != expected {
		t.Errorf("Frame() = %q, expected %q", s.Frame(), expected)
	}

	var buf bytes.Buffer
	if err := s.Flush(&buf); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.String() != expected {
		t.Errorf("Flush wrote %q, expected %q", buf.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Blit(0, 0, []string{"Hello"})

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should clear the buffer")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(0, 2, 'T')

	row := s.Row(2)
	if !strings.HasPrefix(row, "T") {
		t.Errorf("Row(2) should start with 'T', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
