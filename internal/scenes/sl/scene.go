// Package sl is the steam locomotive crossing the terminal, with its coal
// car, smoke and optional passengers crying for help.
package sl

import (
	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
	"github.com/vovakirdan/coretilus/internal/registry"
)

// Object kinds.
const (
	KindD51 engine.Kind = iota + 1
	KindLogo
	KindC51
	KindSmoke
	KindAccident
	KindCoal
	KindLogoCoal
	KindLogoCar
)

// Flag names.
const (
	FlagAccident = "accident"
	FlagFly      = "fly"
	FlagLogo     = "logo"
	FlagC51      = "c51"
)

// Flags lists the switches understood by the scene.
var Flags = []registry.Flag{
	{Short: "a", Long: FlagAccident, Usage: "passengers cry for help"},
	{Short: "F", Long: FlagFly, Usage: "the train flies"},
	{Short: "l", Long: FlagLogo, Usage: "little engine with two cars"},
	{Short: "c", Long: FlagC51, Usage: "C51 engine"},
}

func init() {
	registry.Register(registry.Scene{
		ID:      "sl",
		Title:   "Steam Locomotive",
		Summary: "a train crosses the screen",
		Flags:   Flags,
		Build:   Build,
	})
}

func newD51() *engine.Object {
	return engine.NewObject(KindD51, "Steam locomotive D51", 10).
		SetAnimation(anim.MovementBased(locomotive(d51Body, d51Wheels), 0, true))
}

func newLogo() *engine.Object {
	return engine.NewObject(KindLogo, "Steam locomotive Logo", 10).
		SetAnimation(anim.MovementBased(locomotive(logoBody, logoWheels), 0, true))
}

func newC51() *engine.Object {
	return engine.NewObject(KindC51, "Steam locomotive C51", 10).
		SetAnimation(anim.MovementBased(locomotive(c51Body, c51Wheels), 0, true))
}

func newSmoke() *engine.Object {
	return engine.NewObject(KindSmoke, "Smoke", 10).
		SetAnimation(anim.TickBased(anim.NewFrames(smokeArt[:]...), 0, 20, 0, true))
}

func newAccident(startFrame int) *engine.Object {
	frames := anim.NewFrames(accidentArt[0], accidentArt[0], accidentArt[1], accidentArt[1])
	return engine.NewObject(KindAccident, "Accident", 15).
		SetAnimation(anim.TickBased(frames, startFrame, 50, 0, true))
}

func newCoal() *engine.Object {
	return engine.NewObject(KindCoal, "Coal", 12).
		SetAnimation(anim.Static(anim.NewFrame(coalArt)))
}

func newLogoCoal() *engine.Object {
	return engine.NewObject(KindLogoCoal, "Little coal", 12).
		SetAnimation(anim.Static(anim.NewFrame(logoCoalArt)))
}

func newLogoCar() *engine.Object {
	return engine.NewObject(KindLogoCar, "Little car", 13).
		SetAnimation(anim.Static(anim.NewFrame(logoCarArt)))
}

// Build assembles the train. The engine runs Linear from past the right edge
// until the whole train has left on the left; every other part follows it
// through a Relative movement.
func Build(p registry.Params) (*registry.Build, error) {
	fly := p.Has(FlagFly)
	little := p.Has(FlagLogo)
	c51 := p.Has(FlagC51)
	accident := p.Has(FlagAccident)

	loco, coal := newD51(), newCoal()
	if little {
		loco, coal = newLogo(), newLogoCoal()
	}
	if c51 {
		loco = newC51()
	}
	smoke := newSmoke()
	w := engine.NewWorld()

	locoSize := loco.Size()

	// Coal car, hooked behind the engine
	coalOffset := core.C(locoSize.W, 0)
	switch {
	case c51:
		if fly {
			coalOffset.Y = -1
		}
	case little:
		coalOffset.X++
		if fly {
			coalOffset.Y = -2
		}
	case fly:
		coalOffset = core.C(locoSize.W+1, -1)
	}
	coal.SetMovement(motion.Relative(loco.ID(), coalOffset))
	w.Add(coal)

	// Smoke, above the chimney
	smokeX := 8
	if little {
		smokeX = 5
	}
	smoke.SetMovement(motion.Relative(loco.ID(), core.C(smokeX, locoSize.H)))
	w.Add(smoke)

	// Train length past the engine's left edge
	length := max(smokeX+smoke.Size().W, coalOffset.X+coal.Size().W)

	var cars []*engine.Object
	if little {
		carY := 0
		if fly {
			carY = -2
		}
		parent, parentW := coal, coal.Size().W
		x := coalOffset.X
		for range 2 {
			car := newLogoCar()
			car.SetMovement(motion.Relative(parent.ID(), core.C(parentW+1, carY)))
			x += parentW + 1
			parent, parentW = car, car.Size().W
			cars = append(cars, car)
		}
		length = max(length, x+parentW)
	}

	start := core.Pos(core.RightOut, core.Middle)
	if fly {
		start = core.Pos(core.RightOut, core.At(0))
	}
	end := core.Pos(core.At(-length), core.Middle)
	loco.SetMovement(motion.Linear(start, end, p.Config.Sl.Speed))
	w.Add(loco)

	if accident {
		if little {
			cry := newAccident(0)
			cry.SetMovement(motion.Relative(loco.ID(), core.C(13, 3)))
			w.Add(cry)
			for _, car := range cars {
				for i, off := range []core.Coords{core.C(10, 3), core.C(2, 3)} {
					cry := newAccident(i)
					cry.SetMovement(motion.Relative(car.ID(), off))
					w.Add(cry)
				}
			}
		} else {
			offsets := []core.Coords{core.C(46, 6), core.C(42, 6)}
			if c51 {
				offsets = []core.Coords{core.C(48, 6), core.C(44, 6)}
			}
			for i, off := range offsets {
				cry := newAccident(i)
				cry.SetMovement(motion.Relative(loco.ID(), off))
				w.Add(cry)
			}
		}
	}
	w.Add(cars...)

	return &registry.Build{World: w}, nil
}
