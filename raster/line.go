// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"math"
)

// Line draws a line from p1 to p2 with the given thickness and style.
//
// The path is traversed with integer Bresenham stepping, so the set of
// visited points does not depend on floating point behaviour. Each painted
// step stamps a thickness-sized square centred on the current point.
//
// Only the steps whose stamp can reach dst are visited: the stepping state
// at the first visible step is computed directly, so the cost does not grow
// with how far outside dst the endpoints lie.
func Line(dst Surface, p1, p2 image.Point, c color.NRGBA, thickness int, style Style) {
	thickness = clampThickness(thickness)
	p1, p2, phase, ok := limitSegment(p1, p2, style.period(thickness))
	if !ok {
		return
	}

	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	sx := -1
	if p1.X < p2.X {
		sx = 1
	}
	sy := -1
	if p1.Y < p2.Y {
		sy = 1
	}
	xMajor := dx >= dy
	major, minor := max(dx, dy), min(dx, dy)

	// minorSteps is the number of minor-axis moves within the first k
	// steps. The major coordinate moves on every step.
	minorSteps := func(k int) int {
		if major == 0 {
			return 0
		}
		return ceilDiv(2*k*minor-major, 2*major)
	}
	at := func(k int) image.Point {
		m := minorSteps(k)
		if xMajor {
			return image.Pt(p1.X+sx*k, p1.Y+sy*m)
		}
		return image.Pt(p1.X+sx*m, p1.Y+sy*k)
	}

	first, last, ok := visibleSteps(dst, major, thickness/2, at)
	if !ok {
		return
	}

	xSteps, ySteps := first, minorSteps(first)
	if !xMajor {
		xSteps, ySteps = ySteps, xSteps
	}
	err := dx - dy - xSteps*dy + ySteps*dx
	p := at(first)
	x0, y0 := p.X, p.Y

	for step := first; ; step++ {
		if style.paints(step+phase, thickness) {
			stamp(dst, x0, y0, thickness, c)
		}
		if step == last {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// compass holds the eight snapped directions indexed by atan2 angle / 45°
// in image coordinates (y grows downward).
var compass = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// SnapTo45 returns the point at the same distance from anchor as current,
// with the direction rounded to the nearest multiple of 45°.
//
// Already snapped points are fixed points: SnapTo45(a, SnapTo45(a, b)) equals
// SnapTo45(a, b).
func SnapTo45(anchor, current image.Point) image.Point {
	dx := float64(current.X - anchor.X)
	dy := float64(current.Y - anchor.Y)

	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	dir := compass[int(math.Round(deg/45))%len(compass)]

	// Diagonals advance by one unit on both axes, so their length per unit
	// step is √2. Rounding the step count keeps the result on the diagonal.
	length := math.Hypot(dx, dy)
	unit := math.Hypot(float64(dir.X), float64(dir.Y))
	n := int(math.Round(length / unit))

	return anchor.Add(dir.Mul(n))
}
