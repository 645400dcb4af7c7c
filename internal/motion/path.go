// Package motion generates the discrete paths entities follow, one
// coordinate per tick.
package motion

import (
	"math"

	"github.com/vovakirdan/coretilus/internal/core"
)

// linePath rasterizes the segment between start and end with Bresenham's
// algorithm. Z is interpolated along the dominant planar axis.
func linePath(start, end core.Coords) []core.Coords {
	dx := core.Abs(end.X - start.X)
	dy := core.Abs(end.Y - start.Y)
	sx := stepToward(start.X, end.X)
	sy := stepToward(start.Y, end.Y)

	n := max(dx, dy) + 1
	points := make([]core.Coords, 0, n)

	err := dx - dy
	cur := start
	for i := 0; ; i++ {
		cur.Z = lerpInt(start.Z, end.Z, i, n-1)
		points = append(points, cur)
		if cur.X == end.X && cur.Y == end.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			cur.X += sx
		}
		if e2 < dx {
			err += dx
			cur.Y += sy
		}
	}

	// Purely vertical moves across layers still need one step per layer
	if dz := core.Abs(end.Z - start.Z); dz > n-1 {
		points = points[:0]
		for i := 0; i <= dz; i++ {
			points = append(points, core.Coords{
				X: start.X,
				Y: start.Y,
				Z: start.Z + i*core.Sign(end.Z-start.Z),
			})
		}
		points[len(points)-1] = end
	}
	return points
}

func stepToward(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

func lerpInt(a, b, i, n int) int {
	if n <= 0 {
		return b
	}
	return a + int(math.Round(float64((b-a)*i)/float64(n)))
}

// arcPath samples the segment between start and end and lifts it by a
// parabolic bump peaking at radius halfway along. Consecutive duplicate
// points are dropped.
func arcPath(start, end core.Coords, radius int) []core.Coords {
	dx := end.X - start.X
	dy := end.Y - start.Y
	dz := end.Z - start.Z
	steps := max(core.Abs(dx), core.Abs(dy), core.Abs(dz), 1)

	points := make([]core.Coords, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		bump := 4 * t * (1 - t)
		c := core.Coords{
			X: int(math.Round(float64(start.X) + float64(dx)*t)),
			Y: int(math.Round(float64(start.Y) + float64(dy)*t + bump*float64(radius))),
			Z: int(math.Round(float64(start.Z) + float64(dz)*t)),
		}
		if len(points) > 0 && points[len(points)-1] == c {
			continue
		}
		points = append(points, c)
	}
	return points
}

// stationaryPath repeats one point ttl times.
func stationaryPath(at core.Coords, ttl int) []core.Coords {
	points := make([]core.Coords, ttl)
	for i := range points {
		points[i] = at
	}
	return points
}

// replicate holds every point for speed ticks.
func replicate(path []core.Coords, speed int) []core.Coords {
	out := make([]core.Coords, 0, len(path)*speed)
	for _, c := range path {
		for range speed {
			out = append(out, c)
		}
	}
	return out
}

// shift adds offset to every point in place.
func shift(path []core.Coords, offset core.Coords) {
	for i := range path {
		path[i].X += offset.X
		path[i].Y += offset.Y
	}
}
