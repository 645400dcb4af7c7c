package gti

import "github.com/vovakirdan/coretilus/internal/anim"

const carBody = `        ______________
       /  |      |    \
  ____/___|______|_____\____
 |  GTI      __           _ \
 |__________/  \_________/ \|
`

var carWheels = [2]string{
	`           \_+/         \_+/`,
	`           \_x/         \_x/`,
}

// Being towed: a rope to the truck off the right edge.
const pullBody = `        ______________
       /  |      |    \
  ____/___|______|_____\____
 |  GTI      __           _ \
 |__________/  \_________/ \|==========o
`

// Being pushed by someone out of breath.
const pushBody = `            ______________
     o     /  |      |    \
    /|_/__/___|______|_____\____
    /\  |  GTI      __           _ \
   /  \ |__________/  \_________/ \|
`

var pushWheels = [2]string{
	`               \_+/         \_+/`,
	`               \_x/         \_x/`,
}

var commitBadges = [3]string{
	`         .--------.
         | commit |
         '--------'`,
	`         .--------.
         | COMMIT |
         '--------'`,
	`         .--------.
         | c0mm1t |
         '--------'`,
}

var tagBadges = [3]string{
	`        __________
       ( v1.0.0  o)`,
	`        __________
       ( v1.0.0  O)`,
	`        __________
       ( v1.0.0  *)`,
}

// drive assembles the two wheel frames of a moving car.
func drive(body string, wheels [2]string) []anim.Frame {
	return anim.NewFrames(body+wheels[0], body+wheels[1])
}

// parked puts a blinking badge over a parked car.
func parked(badges [3]string) []anim.Frame {
	frames := make([]anim.Frame, len(badges))
	for i, b := range badges {
		frames[i] = anim.NewFrame(b + "\n" + carBody + carWheels[0])
	}
	return frames
}
