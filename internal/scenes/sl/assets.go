package sl

import "github.com/vovakirdan/coretilus/internal/anim"

const d51Body = `      ====        ________                ___________
  _D _|  |_______/        \__I_I_____===__|_________|
   |(_)---  |   H\________/ |   |        =|___ ___|
   /     |  |   H  |  |     |   |         ||_| |_||
  |      |  |   H  |__--------------------| [___] |
  | ________|___H__/__|_____/[][]~\_______|       |
  |/ |   |-----------I_____I [][] []  D   |=======|__
`

var d51Wheels = [6]string{
	`__/ =| o |=-~~\  /~~\  /~~\  /~~\ ____Y___________|__
 |/-=|___|=    ||    ||    ||    |_____/~\___/
  \_/      \O=====O=====O=====O_/      \_/`,
	`__/ =| o |=-~~\  /~~\  /~~\  /~~\ ____Y___________|__
 |/-=|___|=O=====O=====O=====O   |_____/~\___/
  \_/      \__/  \__/  \__/  \__/      \_/`,
	`__/ =| o |=-O=====O=====O=====O \ ____Y___________|__
 |/-=|___|=    ||    ||    ||    |_____/~\___/
  \_/      \__/  \__/  \__/  \__/      \_/`,
	`__/ =| o |=-~O=====O=====O=====O\ ____Y___________|__
 |/-=|___|=    ||    ||    ||    |_____/~\___/
  \_/      \__/  \__/  \__/  \__/      \_/`,
	`__/ =| o |=-~~\  /~~\  /~~\  /~~\ ____Y___________|__
 |/-=|___|=   O=====O=====O=====O|_____/~\___/
  \_/      \__/  \__/  \__/  \__/      \_/`,
	`__/ =| o |=-~~\  /~~\  /~~\  /~~\ ____Y___________|__
 |/-=|___|=    ||    ||    ||    |_____/~\___/
  \_/      \_O=====O=====O=====O/      \_/`,
}

const c51Body = `        ___
       _|_|_  _     __       __             ___________
    D__/   \_(_)___|  |__H__|  |_____I_Ii_()|_________|
     | '---'   |:: '--'  H  '--'         |  |___ ___|
    +|~~~~~~~~++::~~~~~~~H~~+=====+~~~~~~|~~||_| |_||
    ||        | ::       H  +=====+      |  |::  ...|
|    | _______|_::-----------------[][]-----|       |
`

var c51Wheels = [6]string{
	`| /~~ ||   |-----/~~~~\  /[I_____I][][] --|||_______|__
------'|oOo|==[]=-     ||      ||      |  ||=======_|__
/~\____|___|/~\_|   O=======O=======O  |__|+-/~\_|
\_/         \_/  \____/  \____/  \____/      \_/`,
	`| /~~ ||   |-----/~~~~\  /[I_____I][][] --|||_______|__
------'|oOo|===[]=-    ||      ||      |  ||=======_|__
/~\____|___|/~\_|  O=======O=======O   |__|+-/~\_|
\_/         \_/  \____/  \____/  \____/      \_/`,
	`| /~~ ||   |-----/~~~~\  /[I_____I][][] --|||_______|__
------'|oOo|===[]=- O=======O=======O  |  ||=======_|__
/~\____|___|/~\_|      ||      ||      |__|+-/~\_|
\_/         \_/  \____/  \____/  \____/      \_/`,
	`| /~~ ||   |-----/~~~~\  /[I_____I][][] --|||_______|__
------'|oOo|==[]=- O=======O=======O   |  ||=======_|__
/~\____|___|/~\_|      ||      ||      |__|+-/~\_|
\_/         \_/  \____/  \____/  \____/      \_/`,
	`| /~~ ||   |-----/~~~~\  /[I_____I][][] --|||_______|__
------'|oOo|=[]=- O=======O=======O    |  ||=======_|__
/~\____|___|/~\_|      ||      ||      |__|+-/~\_|
\_/         \_/  \____/  \____/  \____/      \_/`,
	`| /~~ ||   |-----/~~~~\  /[I_____I][][] --|||_______|__
------'|oOo|=[]=-      ||      ||      |  ||=======_|__
/~\____|___|/~\_|    O=======O=======O |__|+-/~\_|
\_/         \_/  \____/  \____/  \____/      \_/`,
}

const logoBody = `     ++      +------
     ||      |+-+ |
   /---------|| | |
  + ========  +-+ |
`

var logoWheels = [6]string{
	` _|--O========O~\-+
//// \_/      \_/`,
	` _|--/O========O\-+
//// \_/      \_/`,
	` _|--/~O========O-+
//// \_/      \_/`,
	` _|--/~\------/~\-+
//// \_O========O`,
	` _|--/~\------/~\-+
//// \O========O/`,
	` _|--/~\------/~\-+
//// O========O_/`,
}

var coalArt = anim.Art(`
    _________________
   _|                \_____A
 =|                        |
 -|                        |
__|________________________|_
|__________________________|_
   |_D__D__D_|  |_D__D__D_|
    \_/   \_/    \_/   \_/`)

var logoCoalArt = anim.Art(`
____
|   \@@@@@@@@@@@
|    \@@@@@@@@@@@@@_
|                  |
|__________________|
   (O)       (O)`)

var logoCarArt = anim.Art(`
____________________
|  ___ ___ ___ ___ |
|  |_| |_| |_| |_| |
|__________________|
|__________________|
   (O)        (O)`)

var smokeArt = [4]string{
	anim.Art(`
                (@@)
         (  )
   (@)
 ()`),
	anim.Art(`
                 (  )
          (@@)
    ( )
 @`),
	anim.Art(`
                (@@@)
         (   )
   (@@)
  ()`),
	anim.Art(`
                 (   )
          (@@@)
    (  )
 @@`),
}

var accidentArt = [2]string{
	anim.Art(`
Help!
 \O/`),
	anim.Art(`
HELP!
 |O|`),
}

// locomotive returns the animation frames of an engine: one shared body on
// top of six wheel phases.
func locomotive(body string, wheels [6]string) []anim.Frame {
	contents := make([]string, len(wheels))
	for i, w := range wheels {
		contents[i] = body + w
	}
	return anim.NewFrames(contents...)
}
