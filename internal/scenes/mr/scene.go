// Package mr is the rocket landing game: steer a falling rocket onto a
// spaceport before it hits the ground.
package mr

import (
	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
	"github.com/vovakirdan/coretilus/internal/registry"
)

// Object kinds.
const (
	KindMini engine.Kind = iota + 14
	KindMiniLanded
	KindStd
	KindStdLanded
	KindSpaceport
	KindExplosion
	KindSignLand
	KindSignSuccess
	KindSignFailed
	KindSignTryAgain
)

// Flag names.
const (
	FlagForce     = "force"
	FlagRecursive = "recursive"
)

// Flags lists the switches understood by the scene.
var Flags = []registry.Flag{
	{Short: "f", Long: FlagForce, Usage: "land the big rocket"},
	{Short: "r", Long: FlagRecursive, Usage: "try again after a crash"},
}

// signTTL keeps the end signs on screen once shown.
const signTTL = 200

func init() {
	registry.Register(registry.Scene{
		ID:      "mr",
		Title:   "Rocket Landing",
		Summary: "steer a rocket onto its spaceport",
		Flags:   Flags,
		Build:   Build,
	})
}

func newRocket(force bool) *engine.Object {
	kind, name, frames := KindMini, "Rocket mini", rocket(miniBody, miniFlames)
	if force {
		kind, name, frames = KindStd, "Rocket", rocket(stdBody, stdFlames)
	}
	// The flames do not collide
	size := frames[0].Size()
	return engine.NewObject(kind, name, 10).
		SetCollider(engine.NewCollider(core.C(-1, 2), core.NewSize(size.W+1, size.H-2))).
		SetAnimation(anim.MovementBased(frames, 0, true))
}

func newLandedRocket(force bool) *engine.Object {
	kind, name, frames := KindMiniLanded, "Landed Rocket mini", rocket(miniBody, miniFlames)
	if force {
		kind, name, frames = KindStdLanded, "Landed Rocket", rocket(stdBody, stdFlames)
	}
	return engine.NewObject(kind, name, 10).
		SetAnimation(anim.TickBased(frames[:1], 0, 1, 50, true)).
		SetVisible(false)
}

func newSpaceport() *engine.Object {
	return engine.NewObject(KindSpaceport, "Spaceport", 0).
		SetAnimation(anim.Static(anim.NewFrame(spaceportArt)))
}

func newExplosion() *engine.Object {
	return engine.NewObject(KindExplosion, "Explosion", 1).
		SetAnimation(anim.TickBased(explosion(), 0, 20, 0, false)).
		SetVisible(false)
}

func newSign(kind engine.Kind, name, art string) *engine.Object {
	return engine.NewObject(kind, name, 0).
		SetAnimation(anim.Static(anim.NewFrame(art)))
}

// outcome records how a run ended for the retry loop.
type outcome struct {
	landed  bool
	crashed bool
}

// Build assembles one landing attempt. The returned Retry asks for another
// attempt only after a crash with the recursive flag.
func Build(p registry.Params) (*registry.Build, error) {
	force := p.Has(FlagForce)
	recursive := p.Has(FlagRecursive)
	rng := p.Rand()
	w := engine.NewWorld()
	state := &outcome{}

	endSign := core.Pos(core.Middle, core.Middle)

	landSign := newSign(KindSignLand, "Land rocket sign", signLandArt).
		SetMovement(motion.Stationary(core.Pos(core.LeftIn, core.TopIn), 0))
	success := engine.NewObject(KindSignSuccess, "Landed rocket sign", 0).
		SetAnimation(anim.TickBased(anim.NewFrames(signSuccessArt), 0, 1, 200, true)).
		SetMovement(motion.Stationary(endSign, signTTL)).
		SetVisible(false)
	failed := newSign(KindSignFailed, "Rocket crashed sign", signFailedArt).
		SetMovement(motion.Stationary(endSign, signTTL)).
		SetVisible(false)
	tryAgain := newSign(KindSignTryAgain, "Rocket crashed try again sign", signTryAgainArt).
		SetMovement(motion.Stationary(endSign, signTTL)).
		SetVisible(false)
	w.Add(landSign, success, failed, tryAgain)

	landed := newLandedRocket(force)
	w.Add(landed)

	rocketObj := newRocket(force)
	nudge := func(dx int) engine.KeyAction {
		return func(ctx *engine.Context, self engine.ObjectID) {
			ctx.With(self, func(o *engine.Object) {
				o.Movement().AddOffset(core.C(dx, 0))
			})
		}
	}
	rocketObj.
		OnKey(core.RuneKey('d'), nudge(1)).
		OnKey(core.SpecialKey(core.KeyRight), nudge(1)).
		OnKey(core.RuneKey('a'), nudge(-1)).
		OnKey(core.SpecialKey(core.KeyLeft), nudge(-1)).
		SetMovement(motion.Linear(
			core.Pos(core.Middle, core.TopOut),
			core.Pos(core.Middle, core.At(-2)),
			p.Config.Mr.Speed,
		))
	w.Add(rocketObj)

	spaceport := newSpaceport()
	spaceportX := 0
	if room := p.Terminal.W - spaceport.Size().W; room > 0 {
		spaceportX = rng.Intn(room)
	}
	spaceport.SetMovement(motion.Stationary(core.PosAt(spaceportX, 0), p.Config.Mr.SpaceportTTL))
	w.Add(spaceport)

	boom := newExplosion()
	w.Add(boom)

	rocketID, rocketW := rocketObj.ID(), rocketObj.Size().W

	touchdown := engine.NewPairCollision(rocketID, spaceport.ID(), func(ctx *engine.Context, a, _ engine.ObjectID, _ int) {
		at := ctx.World().Coords(a)
		ctx.With(a, func(o *engine.Object) {
			o.SetVisible(false)
			o.Collider().Active = false
		})
		ctx.With(landed.ID(), func(o *engine.Object) {
			o.SetMovement(motion.Stationary(core.PosAt(at.X, at.Y+1), 20))
			o.SetVisible(true)
		})
		ctx.Show(success.ID())
		state.landed = true
	})

	crash := engine.NewEdgeCollision(rocketID, engine.EdgeBottom, func(ctx *engine.Context, a engine.ObjectID, _ int) {
		at := ctx.World().Coords(a)
		ctx.With(a, func(o *engine.Object) {
			o.SetVisible(false)
			o.Collider().Active = false
		})
		ctx.With(boom.ID(), func(o *engine.Object) {
			x := at.X - o.Size().W/2 + rocketW/2
			o.SetMovement(motion.Stationary(core.PosAt(x, 0), 0))
			o.SetVisible(true)
		})
		if recursive {
			ctx.Show(tryAgain.ID())
		} else {
			ctx.Show(failed.ID())
		}
		state.crashed = true
	})

	return &registry.Build{
		World:      w,
		Collisions: []*engine.Collision{touchdown, crash},
		Retry: func() bool {
			return state.crashed && !state.landed && recursive
		},
	}, nil
}
