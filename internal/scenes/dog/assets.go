package dog

import "github.com/vovakirdan/coretilus/internal/anim"

// dogBody is the part of the dog that does not move while running.
const dogBody = `            __
 \         /o \__
  \_______/    __O
   |          /
   \_________/
`

// dogLegs are the six strides of a gallop.
var dogLegs = [6]string{
	`    /  /  \  \
   /  /    \  \`,
	`    |  /  |  \
    | /   |   \`,
	`    \  |  \  |
     \ |   \ |`,
	`    \  \  /  /
     \  \/  /`,
	`    /  |  /  |
   /   | /   |`,
	`    |  \  |  \
    |   \ |   \`,
}

// gallop assembles one frame per stride.
func gallop() []anim.Frame {
	frames := make([]anim.Frame, len(dogLegs))
	for i, legs := range dogLegs {
		frames[i] = anim.NewFrame(dogBody + legs)
	}
	return frames
}
