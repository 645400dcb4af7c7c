package anim

import (
	"fmt"

	"github.com/vovakirdan/coretilus/internal/core"
)

// Kind selects how an animation advances.
type Kind uint8

const (
	KindEmpty         Kind = iota // No frames, placeholder entities
	KindStatic                    // One frame, never done
	KindTickBased                 // Frames follow elapsed ticks
	KindMovementBased             // Frames follow the owner's movement
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindStatic:
		return "Static"
	case KindTickBased:
		return "TickBased"
	case KindMovementBased:
		return "MovementBased"
	default:
		return "Unknown"
	}
}

// Animation steps through an ordered sequence of frames.
// The current index is always a valid frame index, and done only clears on
// Reset.
type Animation struct {
	frames       []Frame
	current      int
	startFrame   int // Phase offset, lets copies of one animation run out of sync
	defaultTicks int // Ticks per frame when a frame has no override
	kind         Kind
	duration     int // Overall cap in ticks, 0 = none
	loop         bool
	done         bool
	started      bool
	startedTick  int
}

// Empty returns a placeholder animation with no frames.
func Empty() *Animation {
	return &Animation{
		kind: KindEmpty,
		loop: true,
		done: true,
	}
}

// Static returns a single-frame animation.
func Static(frame Frame) *Animation {
	return &Animation{
		frames: []Frame{frame},
		kind:   KindStatic,
		loop:   true,
	}
}

// TickBased returns an animation that shows each frame for its tick count
// (or defaultTicks), starting at startFrame. A duration > 0 marks the
// animation done once that many ticks elapsed.
func TickBased(frames []Frame, startFrame, defaultTicks, duration int, loop bool) *Animation {
	mustFrames("tick-based", frames, startFrame)
	return &Animation{
		frames:       frames,
		current:      startFrame,
		startFrame:   startFrame,
		defaultTicks: defaultTicks,
		kind:         KindTickBased,
		duration:     duration,
		loop:         loop,
	}
}

// MovementBased returns an animation that moves one frame forward on every
// tick where its owner changed position.
func MovementBased(frames []Frame, startFrame int, loop bool) *Animation {
	mustFrames("movement-based", frames, startFrame)
	return &Animation{
		frames:     frames,
		current:    startFrame,
		startFrame: startFrame,
		kind:       KindMovementBased,
		loop:       loop,
	}
}

func mustFrames(kind string, frames []Frame, startFrame int) {
	if len(frames) == 0 {
		panic(fmt.Sprintf("anim: %s animation needs at least one frame", kind))
	}
	if startFrame < 0 || startFrame >= len(frames) {
		panic(fmt.Sprintf("anim: start frame %d out of range [0, %d)", startFrame, len(frames)))
	}
}

// Kind returns the advancement policy.
func (a *Animation) Kind() Kind {
	return a.kind
}

// Frames returns the frame sequence. The slice must not be modified.
func (a *Animation) Frames() []Frame {
	return a.frames
}

// Index returns the current frame index.
func (a *Animation) Index() int {
	return a.current
}

// Frame returns the current frame, or an empty frame for KindEmpty.
func (a *Animation) Frame() Frame {
	if len(a.frames) == 0 {
		return Frame{}
	}
	return a.frames[a.current]
}

// Loop reports whether the animation wraps around.
func (a *Animation) Loop() bool {
	return a.loop
}

// Duration returns the overall tick cap (0 = none).
func (a *Animation) Duration() int {
	return a.duration
}

// SetDuration caps the animation at the given number of ticks after its first
// advance, whatever its kind.
func (a *Animation) SetDuration(ticks int) *Animation {
	a.duration = ticks
	return a
}

// Done reports whether the animation finished. Static animations never
// finish and empty ones always are.
func (a *Animation) Done() bool {
	switch a.kind {
	case KindStatic:
		return false
	case KindEmpty:
		return true
	default:
		return a.done
	}
}

// Started reports whether Advance was called since creation or Reset.
func (a *Animation) Started() bool {
	return a.started
}

// MaxSize returns the bounds of the largest frame on each axis.
func (a *Animation) MaxSize() core.Size {
	var size core.Size
	for _, f := range a.frames {
		if f.Width() > size.W {
			size.W = f.Width()
		}
		if f.Height() > size.H {
			size.H = f.Height()
		}
	}
	return size
}

// Reset rewinds the animation to its initial frame.
func (a *Animation) Reset() {
	a.current = a.startFrame
	a.done = false
	a.started = false
	a.startedTick = 0
}

// Advance moves the animation to the given tick. MovementBased animations
// need the owner's coordinate on this tick (prev) and the next one (next);
// calling it without both is a scene authoring bug and panics.
func (a *Animation) Advance(tick int, prev, next *core.Coords) {
	if !a.started {
		a.started = true
		a.startedTick = tick
	}
	elapsed := tick - a.startedTick
	if a.duration > 0 && elapsed >= a.duration {
		a.done = true
	}

	switch a.kind {
	case KindEmpty, KindStatic:
		// Nothing to do
	case KindTickBased:
		a.advanceTicks(elapsed)
	case KindMovementBased:
		if prev == nil || next == nil {
			panic("anim: movement-based animation advanced without both coordinates")
		}
		a.advanceMovement(*prev != *next)
	}
}

// frameTicks returns how long frame i is shown.
func (a *Animation) frameTicks(i int) int {
	if t := a.frames[i].Ticks(); t > 0 {
		return t
	}
	return a.defaultTicks
}

// TotalTicks returns the cumulative duration of all frames.
func (a *Animation) TotalTicks() int {
	total := 0
	for i := range a.frames {
		total += a.frameTicks(i)
	}
	return total
}

func (a *Animation) advanceTicks(elapsed int) {
	total := a.TotalTicks()
	last := len(a.frames) - 1

	if !a.loop && total > 0 && elapsed >= total {
		a.done = true
		a.current = last
		return
	}

	offset := 0
	for i := 0; i < a.startFrame; i++ {
		offset += a.frameTicks(i)
	}

	effective := elapsed
	if total > 0 {
		effective += offset
		if a.loop {
			effective %= total
		} else if effective > total-1 {
			effective = total - 1
		}
	}

	acc := 0
	for i := range a.frames {
		acc += a.frameTicks(i)
		if effective < acc {
			a.current = i
			return
		}
	}
	a.current = last
}

func (a *Animation) advanceMovement(moved bool) {
	last := len(a.frames) - 1
	if !a.loop && a.current >= last {
		a.done = true
		return
	}
	if !moved {
		return
	}
	if a.loop && a.current == last {
		a.current = 0
	} else {
		a.current++
	}
	if !a.loop && a.current >= last {
		a.done = true
	}
}
