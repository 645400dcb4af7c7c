package core

import (
	"io"
	"strings"
)

// cursorHome moves the cursor to the top-left cell.
const cursorHome = "\x1b[H"

// Screen is a 2D character buffer for compositing one tick.
// Rows are stored top to bottom; Set/Get use row/column indices while
// Blit takes terminal-space coordinates where y grows upwards.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the screen dimensions.
func (s *Screen) Size() Size {
	return Size{W: s.width, H: s.height}
}

// Resize changes the screen dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given column and row.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(col, row int, r rune) {
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return
	}
	s.cells[row][col] = r
}

// Get returns the rune at the given column and row.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(col, row int) rune {
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return ' '
	}
	return s.cells[row][col]
}

// At returns the rune at a terminal-space coordinate (y counted from the
// bottom row).
func (s *Screen) At(x, y int) rune {
	return s.Get(x, s.height-1-y)
}

// Blit draws text lines whose bottom-left corner sits at the terminal-space
// coordinate (x, y). The last line lands on row y, earlier lines above it.
// Spaces are transparent and off-screen cells are clipped.
func (s *Screen) Blit(x, y int, lines []string) {
	for dy := 0; dy < len(lines); dy++ {
		line := lines[len(lines)-1-dy]
		row := s.height - 1 - (y + dy)
		if row < 0 || row >= s.height {
			continue
		}
		dx := 0
		for _, r := range line {
			col := x + dx
			dx++
			if r == ' ' || col < 0 || col >= s.width {
				continue
			}
			s.cells[row][col] = r
		}
	}
}

// String converts the screen buffer to rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Frame returns the full-screen payload for a raw terminal: a cursor-home
// escape followed by every row, with no separators and no per-cell escapes.
func (s *Screen) Frame() []byte {
	var sb strings.Builder
	sb.Grow(len(cursorHome) + s.width*s.height)

	sb.WriteString(cursorHome)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return []byte(sb.String())
}

// Flush writes the frame payload with a single Write call.
func (s *Screen) Flush(w io.Writer) error {
	_, err := w.Write(s.Frame())
	return err
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
