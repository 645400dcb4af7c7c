// Package anim implements ASCII frames and the per-entity animation state
// machine that picks which frame is shown on a given tick.
package anim

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/coretilus/internal/core"
)

// Frame is one immutable block of multi-line ASCII art.
type Frame struct {
	content string
	ticks   int // Display ticks; 0 means use the animation default
	lines   []string
	width   int
}

// NewFrame creates a frame that uses the animation's default duration.
func NewFrame(content string) Frame {
	return NewFrameTicks(content, 0)
}

// NewFrameTicks creates a frame displayed for the given number of ticks.
func NewFrameTicks(content string, ticks int) Frame {
	lines := splitLines(content)
	width := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return Frame{
		content: content,
		ticks:   ticks,
		lines:   lines,
		width:   width,
	}
}

// splitLines splits text on newlines, dropping one trailing newline and any
// carriage returns.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Content returns the raw text of the frame.
func (f Frame) Content() string {
	return f.content
}

// Ticks returns the display duration override (0 = animation default).
func (f Frame) Ticks() int {
	return f.ticks
}

// Lines returns the frame rows, top first. The slice must not be modified.
func (f Frame) Lines() []string {
	return f.lines
}

// Width returns the length of the longest row in characters.
func (f Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f Frame) Height() int {
	return len(f.lines)
}

// Size returns the frame bounds.
func (f Frame) Size() core.Size {
	return core.Size{W: f.width, H: len(f.lines)}
}

// NewFrames creates one frame per content string.
func NewFrames(contents ...string) []Frame {
	frames := make([]Frame, len(contents))
	for i, c := range contents {
		frames[i] = NewFrame(c)
	}
	return frames
}

// Art strips the newline that opens a raw string literal, so assets can be
// written flush against the left margin.
func Art(s string) string {
	return strings.TrimPrefix(s, "\n")
}
