// Package gti is the car that shows up when "git" is mistyped. Sub-commands
// change the show: pull tows it, push pushes it, commit and tag park it with
// a blinking badge.
package gti

import (
	"slices"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
	"github.com/vovakirdan/coretilus/internal/registry"
)

// Object kinds.
const (
	KindStd    engine.Kind = 9
	KindPull   engine.Kind = 10
	KindPush   engine.Kind = 11
	KindTag    engine.Kind = 12
	KindCommit engine.Kind = 13
)

// Sub-commands, in priority order when several are given.
const (
	ArgPull   = "pull"
	ArgPush   = "push"
	ArgCommit = "commit"
	ArgTag    = "tag"
)

const (
	roadY     = 10
	parkX     = 2
	parkTTL   = 200
	badgeTick = 20
	badgeTTL  = 300
)

func init() {
	registry.Register(registry.Scene{
		ID:      "gti",
		Title:   "Golf GTI",
		Usage:   "[pull|push|commit|tag]",
		Summary: "a car drives by",
		Build:   Build,
	})
}

func driving(kind engine.Kind, name string, frames []anim.Frame, speed int) *engine.Object {
	return engine.NewObject(kind, name, 10).
		SetAnimation(anim.MovementBased(frames, 0, true)).
		SetMovement(motion.Linear(
			core.Pos(core.LeftOut, core.At(roadY)),
			core.Pos(core.RightOut, core.At(roadY)),
			speed,
		))
}

func parking(kind engine.Kind, name string, badges [3]string) *engine.Object {
	return engine.NewObject(kind, name, 10).
		SetAnimation(anim.TickBased(parked(badges), 0, badgeTick, badgeTTL, true)).
		SetMovement(motion.Stationary(core.PosAt(parkX, roadY), parkTTL))
}

// Build picks the car from the first known sub-command.
func Build(p registry.Params) (*registry.Build, error) {
	cfg := p.Config.Gti
	has := func(arg string) bool { return slices.Contains(p.Args, arg) }

	var car *engine.Object
	switch {
	case has(ArgPull):
		car = driving(KindPull, "Golf GTI pulled", drive(pullBody, carWheels), cfg.PullSpeed)
	case has(ArgPush):
		car = driving(KindPush, "Golf GTI pushed", drive(pushBody, pushWheels), cfg.PushSpeed)
	case has(ArgCommit):
		car = parking(KindCommit, "Golf GTI committed", commitBadges)
	case has(ArgTag):
		car = parking(KindTag, "Golf GTI tagged", tagBadges)
	default:
		car = driving(KindStd, "Golf GTI", drive(carBody, carWheels), cfg.Speed)
	}

	return &registry.Build{World: engine.NewWorld(car)}, nil
}
