package pc

import "github.com/vovakirdan/coretilus/internal/anim"

var motherboardArt = anim.Art(`
____________________________________________________________________________________________
|                                             CORETILUS MB-1                               |
|               +---------+  +---------+                                                   |
|               | DISK    |  | NET     |                                                   |
|               |         |  |         |                ...:.................              |
|               +---------+  +---------+                   :      :                        |
|                    :            :                        :      :                        |
|                    :            :                        :      :                        |
|                    :            :                        :      :                        |
|                    :            :                                                        |
|                    :            :                                                        |
|                    :            :                                                        |
|       [==][==][==][==]          :                                                        |
|                    :            :                                                        |
|                 ...:........................................... :                        |
|                    :            :                               :         :              |
|                    :            :                               :         :              |
|                                                                 :         :              |
|                                                                           :              |
|     +----------+                                                          :              |
|     | PWR      |                                                :         :              |
|     |          |                                                :         :              |
|     |          |                                                :         :              |
|     |          |                                                :         :              |
|     |          |                                                :         :              |
|     |          |                                                :         :              |
|     |          |                                                :         :              |
|     |          |                                                                         |
|     |          |                                                                         |
|     |          |                                                                         |
|     +----------+                                                                         |
|                                                                                          |
|                                                                                          |
|   (c) 1987 rev.B                                                                         |
|                                                                                          |
|__________________________________________________________________________________________|`)

var chipsetArt = anim.Art(`
+----------+
|..........|
| CHIPSET .|
|..........|
+----------+`)

var ramArt = anim.Art(`
+----------------------------+
|..... DDR  RAM  4x64K ......|
|. [][][][][][][][][][][][] .|
+----------------------------+`)

var cacheArt = anim.Art(`
+------+
|......|
|......|
|. L2 .|
|......|
| 256K |
|......|
|......|
|......|
|......|
|......|
+------+`)

var cpuArt = anim.Art(`
+--------------+
|..............|
|..............|
|.... CPU .....|
|... 6502+ ....|
|..............|
|..............|
+--------------+`)

// Packet frames per direction: entering, growing, full, shrinking, leaving.
// Heads point the way the packet travels.
var (
	packetDown  = [5]string{"v", "|\nv", "|\n|\nv", "|\nv", "v"}
	packetUp    = [5]string{"^", "^\n|", "^\n|\n|", "^\n|", "^"}
	packetRight = [5]string{">", "->", "-->", "->", ">"}
	packetLeft  = [5]string{"<", "<-", "<--", "<-", "<"}
)
