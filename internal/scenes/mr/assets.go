package mr

import "github.com/vovakirdan/coretilus/internal/anim"

const miniBody = `  /\
 /  \
 |()|
 |  |
/|__|\
`

var miniFlames = [3]string{
	`  ''
  ..`,
	`  ^^
  ''`,
	`  ''
  ^^`,
}

const stdBody = `     /\
    /  \
   /    \
   | () |
   |    |
   | || |
   | || |
  /|____|\
 /_|_/\_|_\
`

var stdFlames = [3]string{
	`    '||'
     ''`,
	`    ^||^
    '  '`,
	`    '^^'
     ^^`,
}

var spaceportArt = anim.Art(`
    |==|
____|__|____
\__________/`)

var signLandArt = anim.Art(`
+-------------------------------+
|  Land the rocket on the pad!  |
|  <- a / left    right / d ->  |
+-------------------------------+`)

var signSuccessArt = anim.Art(`
+---------------------+
|   The Eagle has     |
|      landed!        |
+---------------------+`)

var signFailedArt = anim.Art(`
+---------------------+
|   Mission failed.   |
+---------------------+`)

var signTryAgainArt = anim.Art(`
+---------------------+
|   Crashed... again! |
|     Try again.      |
+---------------------+`)

var explosionArt = [5]string{
	anim.Art(`
  *
 ***`),
	anim.Art(`
   . * .
  * *** *
 .*******.`),
	anim.Art(`
  .  * *  .
 * .*****. *
  *********
 ***********`),
	anim.Art(`
 .   *   *   .
   *  ( ) *
 *  ( (*) )  *
  (  (***)  )
 ((((*****))))`),
	anim.Art(`
  .    .    .
     .   .
  .    .    .
    _______
 __/_._._._\__`),
}

// rocket returns the frames of a rocket: one body over flickering flames.
func rocket(body string, flames [3]string) []anim.Frame {
	contents := make([]string, len(flames))
	for i, f := range flames {
		contents[i] = body + f
	}
	return anim.NewFrames(contents...)
}

// explosion returns ten frames, two per stage.
func explosion() []anim.Frame {
	contents := make([]string, 0, 2*len(explosionArt))
	for _, a := range explosionArt {
		contents = append(contents, a, a)
	}
	return anim.NewFrames(contents...)
}
