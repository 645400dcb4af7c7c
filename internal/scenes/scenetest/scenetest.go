// Package scenetest drives built scenes without a terminal, for tests.
package scenetest

import (
	"testing"

	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/registry"
)

// Build builds a scene with default tuning, the given flags set and the
// given positional arguments.
func Build(t *testing.T, scene registry.Scene, size core.Size, flags []string, args ...string) *registry.Build {
	t.Helper()
	p := registry.DefaultParams(size)
	p.Seed = 1
	for _, f := range flags {
		p.Flags[f] = true
	}
	p.Args = args
	b, err := scene.Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return b
}

// Engine starts an engine on a built scene.
func Engine(t *testing.T, b *registry.Build, size core.Size) *engine.Engine {
	t.Helper()
	e := engine.New(engine.DefaultConfig(), b.World, b.Collisions)
	if err := e.Start(size); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return e
}

// Run ticks the engine until the scene finishes or maxTicks ran. keys are
// handed over one per tick, after the tick, like the real loop does.
func Run(e *engine.Engine, maxTicks int, keys map[int]core.KeyEvent) (engine.Reason, bool) {
	for i := 0; i < maxTicks; i++ {
		e.Tick()
		if ev, ok := keys[i]; ok {
			e.HandleKey(ev)
		}
		if reason, done := e.Finished(); done {
			return reason, true
		}
	}
	return engine.ReasonNone, false
}
