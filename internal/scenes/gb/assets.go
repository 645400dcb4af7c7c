package gb

import (
	"strings"

	"github.com/vovakirdan/coretilus/internal/anim"
)

// gameboyArt is drawn over everything; the screen window is left blank so
// the shapes show through.
var gameboyArt = anim.Art(`
 _______________________________________________
|   _________________________________________   |
|  |                                         |  |
|  |  o  DOT MATRIX WITH STEREO SOUND        |  |
|  |                                         |  |
|  |                                         |  |
|  |     +-----------------------------+     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     |                             |     |  |
|  |     +-----------------------------+     |  |
|  |                                         |  |
|  |                                         |  |
|  |                                         |  |
|  \_________________________________________/  |
|                                               |
|    Nintendo GAME BOY                          |
|                                               |
|        _                            .-.       |
|     _| |_                           '-'       |
|    |_   _|                   .-.      A       |
|      |_|                     '-'              |
|                                B              |
|                                               |
|                                               |
|               // SELECT  // START             |
|                                   / / /       |
|                                    / / /      |
|                                     / / /     |
|                                      / / /    |
|                                               |
\_______________________________________________/`)

// floorArt lines the bottom row of the screen window.
var floorArt = strings.Repeat("_", screenWidth)

// shapeArt holds the seven tetrominoes, two columns per cell.
var shapeArt = [...]string{
	anim.Art(`
[][]
[][]`),
	"[][][][]",
	anim.Art(`
[][][]
  []`),
	anim.Art(`
[]
[]
[][]`),
	anim.Art(`
  []
  []
[][]`),
	anim.Art(`
  [][]
[][]`),
	anim.Art(`
[][]
  [][]`),
}

var shapeNames = [len(shapeArt)]string{"O", "I", "T", "L", "J", "S", "Z"}
