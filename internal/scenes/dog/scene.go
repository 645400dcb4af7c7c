// Package dog is a dog chasing a ball across the terminal. The ball carries
// a domain name when one is given on the command line.
package dog

import (
	"regexp"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
	"github.com/vovakirdan/coretilus/internal/registry"
)

// Object kinds.
const (
	KindDog    engine.Kind = 9
	KindDomain engine.Kind = 10
)

// DefaultLabel is thrown when no domain is given.
const DefaultLabel = "()"

var domainRe = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// IsDomain reports whether s looks like a DNS name.
func IsDomain(s string) bool {
	return domainRe.MatchString(s)
}

func init() {
	registry.Register(registry.Scene{
		ID:      "dog",
		Title:   "Dog",
		Usage:   "[domain]",
		Summary: "a dog fetches a domain",
		Build:   Build,
	})
}

// Build throws the first domain argument in an arc over the running dog.
func Build(p registry.Params) (*registry.Build, error) {
	cfg := p.Config.Dog

	label, ok := p.Arg(IsDomain)
	if !ok {
		label = DefaultLabel
	}

	ball := engine.NewObject(KindDomain, "Domain", 10).
		SetAnimation(anim.Static(anim.NewFrame(label))).
		SetMovement(motion.Circular(
			core.Pos(core.LeftOut, core.At(9)),
			core.Pos(core.RightOut, core.At(9)),
			cfg.BallSpeed,
			cfg.BallRadius,
		))

	dog := engine.NewObject(KindDog, "Running dog", 10).
		SetAnimation(anim.MovementBased(gallop(), 0, true)).
		SetMovement(motion.Linear(
			core.Pos(core.LeftOut, core.At(3)),
			core.Pos(core.RightOut, core.At(3)),
			cfg.Speed,
		))

	return &registry.Build{World: engine.NewWorld(ball, dog)}, nil
}
