package gti

import (
	"strings"
	"testing"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
	"github.com/vovakirdan/coretilus/internal/registry"
	"github.com/vovakirdan/coretilus/internal/scenes/scenetest"
)

var term = core.NewSize(80, 24)

func TestBuild(t *testing.T) {
	tests := []struct {
		args     []string
		kind     engine.Kind
		movement motion.Kind
		speed    int
		anim     anim.Kind
	}{
		{nil, KindStd, motion.KindLinear, 2, anim.KindMovementBased},
		{[]string{ArgPull}, KindPull, motion.KindLinear, 5, anim.KindMovementBased},
		{[]string{ArgPush}, KindPush, motion.KindLinear, 8, anim.KindMovementBased},
		{[]string{ArgCommit}, KindCommit, motion.KindStationary, 0, anim.KindTickBased},
		{[]string{ArgTag}, KindTag, motion.KindStationary, 0, anim.KindTickBased},
		{[]string{ArgTag, ArgPush}, KindPush, motion.KindLinear, 8, anim.KindMovementBased},
		{[]string{"status"}, KindStd, motion.KindLinear, 2, anim.KindMovementBased},
	}

	scene, err := registry.Get("gti")
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.args, "+"), func(t *testing.T) {
			b := scenetest.Build(t, scene, term, nil, tc.args...)
			if b.World.Len() != 1 || len(b.Collisions) != 0 {
				t.Fatalf("objects = %d, collisions = %d", b.World.Len(), len(b.Collisions))
			}
			car := b.World.Objects()[0]
			if car.Kind() != tc.kind {
				t.Errorf("kind = %d, expected %d", car.Kind(), tc.kind)
			}
			m := car.Movement()
			if m.Kind() != tc.movement || m.Speed() != tc.speed {
				t.Errorf("movement %v speed %d, expected %v speed %d", m.Kind(), m.Speed(), tc.movement, tc.speed)
			}
			if a := car.Animation(); a.Kind() != tc.anim || !a.Loop() {
				t.Errorf("animation %v loop %v", a.Kind(), a.Loop())
			}
		})
	}
}

func TestParkedCarLeavesAfterTTL(t *testing.T) {
	scene, _ := registry.Get("gti")
	b := scenetest.Build(t, scene, term, nil, ArgCommit)
	e := scenetest.Engine(t, b, term)

	reason, done := scenetest.Run(e, 1000, nil)
	if !done || reason != engine.ReasonCompleted {
		t.Fatalf("run ended with %v", reason)
	}
	if e.Ticks() < parkTTL || e.Ticks() > parkTTL+2 {
		t.Errorf("finished after %d ticks, expected about %d", e.Ticks(), parkTTL)
	}
}

func TestCarDrivesAcross(t *testing.T) {
	scene, _ := registry.Get("gti")
	b := scenetest.Build(t, scene, term, nil, ArgPush)
	e := scenetest.Engine(t, b, term)

	reason, done := scenetest.Run(e, 10000, nil)
	if !done || reason != engine.ReasonCompleted {
		t.Fatalf("run ended with %v after %d ticks", reason, e.Ticks())
	}
	car := b.World.Objects()[0]
	if at := b.World.Coords(car.ID()); at != core.C(term.W, roadY) {
		t.Errorf("car ends at %v", at)
	}
}
