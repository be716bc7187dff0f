// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"math"
)

// Stamp paints a filled square of side 2*(thickness/2)+1 centred on p. It
// is the brush shared by lines, the freehand brush and the eraser.
func Stamp(dst Surface, p image.Point, thickness int, c color.NRGBA) {
	if !inLimit(p) {
		return
	}
	stamp(dst, p.X, p.Y, clampThickness(thickness), c)
}

// StampSegment stamps every point of the straight segment from–to, so a
// pointer that moved several pixels between two events leaves no gaps.
//
// The segment is sampled at max(|dx|, |dy|)+1 evenly spaced points, rounded
// to the nearest pixel. Samples whose stamp cannot reach dst are skipped
// without being visited.
func StampSegment(dst Surface, from, to image.Point, thickness int, c color.NRGBA) {
	thickness = clampThickness(thickness)
	from, to, _, ok := limitSegment(from, to, 1)
	if !ok {
		return
	}

	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		stamp(dst, from.X, from.Y, thickness, c)
		return
	}

	at := func(i int) image.Point {
		t := float64(i) / float64(steps)
		return image.Pt(
			from.X+int(math.Round(float64(dx)*t)),
			from.Y+int(math.Round(float64(dy)*t)),
		)
	}
	first, last, ok := visibleSteps(dst, steps, thickness/2, at)
	if !ok {
		return
	}
	for i := first; i <= last; i++ {
		p := at(i)
		stamp(dst, p.X, p.Y, thickness, c)
	}
}

// stamp fills the square of half-size thickness/2 around (x, y), clipped to
// dst.
func stamp(dst Surface, x, y, thickness int, c color.NRGBA) {
	radius := thickness / 2
	x0, x1 := max(x-radius, 0), min(x+radius, dst.Width()-1)
	y0, y1 := max(y-radius, 0), min(y+radius, dst.Height()-1)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dst.SetPixel(px, py, c)
		}
	}
}
