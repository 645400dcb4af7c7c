package core

import "time"

// DefaultTerminalSize is used when no terminal is attached (CI, pipes).
var DefaultTerminalSize = Size{W: 100, H: 50}

// DefaultTickDuration is the wall-clock budget of one tick.
const DefaultTickDuration = 5 * time.Millisecond
