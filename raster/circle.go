// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"math"
	"slices"
)

// Circle draws a circle centred on center passing through edge.
//
// The radius is the rounded distance between the two points; a zero radius
// draws nothing, and neither does a radius above coordLimit. Thickness t is
// approximated by t concentric rings of radius r, r-1, …, r-t+1 rather than
// a filled annulus, so thick circles may show small gaps between rings.
//
// Rings that cannot reach dst are skipped, and within a ring only the rows
// whose mirrored points can land on dst are stepped through.
func Circle(dst Surface, center, edge image.Point, c color.NRGBA, thickness int, style Style) {
	thickness = clampThickness(thickness)

	dx := float64(edge.X) - float64(center.X)
	dy := float64(edge.Y) - float64(center.Y)
	fr := math.Round(math.Hypot(dx, dy))
	if fr == 0 || fr > coordLimit {
		return
	}
	radius := int(fr)

	// Every point of a ring of radius r lies within r±1 of the centre.
	near, far := reach(dst, center)
	hi := min(radius, int(math.Min(far, coordLimit))+2)
	lo := max(radius-thickness+1, 0, int(math.Min(near, coordLimit))-2)

	pattern := style.circlePattern()
	for r := hi; r >= lo; r-- {
		ring(dst, center.X, center.Y, r, c, pattern)
	}
}

// reach returns the distances from p to the nearest and the farthest pixel
// of dst.
func reach(dst Surface, p image.Point) (near, far float64) {
	px, py := float64(p.X), float64(p.Y)
	w, h := float64(dst.Width()-1), float64(dst.Height()-1)
	nx := math.Max(0, math.Min(w, px))
	ny := math.Max(0, math.Min(h, py))
	fx := math.Max(math.Abs(px), math.Abs(px-w))
	fy := math.Max(math.Abs(py), math.Abs(py-h))
	return math.Hypot(px-nx, py-ny), math.Hypot(fx, fy)
}

// ring rasterizes one midpoint circle, gating each iteration's eight
// mirrored points by the pattern. Iteration y plots (±x, ±y) and (±y, ±x)
// around the centre, so only rows y that put cx±y or cy±y on dst are
// stepped through.
func ring(dst Surface, cx, cy, r int, c color.NRGBA, pattern []bool) {
	w, h := dst.Width(), dst.Height()
	if cx < -r || cx > w-1+r || cy < -r || cy > h-1+r {
		return
	}
	if r == 0 {
		plotOctants(dst, cx, cy, 0, 0, c)
		return
	}

	end := min(int(float64(r)/math.Sqrt2)+2, r)
	rows := [][2]int{
		{-cy, h - 1 - cy},
		{cy - h + 1, cy},
		{-cx, w - 1 - cx},
		{cx - w + 1, cx},
	}
	slices.SortFunc(rows, func(a, b [2]int) int { return a[0] - b[0] })

	next := 0
	for _, rw := range rows {
		from, to := max(rw[0], next), min(rw[1], end)
		if from > to {
			continue
		}
		octant(dst, cx, cy, r, from, to, c, pattern)
		next = to + 1
	}
}

// octant runs the midpoint iteration over rows from..to, entering at row
// from without stepping through the rows before it.
func octant(dst Surface, cx, cy, r, from, to int, c color.NRGBA, pattern []bool) {
	// The column at row y is the largest x with x(x-1) + y² <= r² as long as
	// every earlier row stayed two columns short of the diagonal.
	y := from
	for y > 0 && column(y-1, r)-(y-1) < 2 {
		y--
	}
	x := column(y, r)
	d := x*x - r*r + (y+1)*(y+1) - x

	for ; y <= x && y <= to; y++ {
		if y >= from && pattern[y%len(pattern)] {
			plotOctants(dst, cx, cy, x, y, c)
		}
		if d <= 0 {
			d += 2*(y+1) + 1
		} else {
			x--
			d += 2*(y+1-x) + 1
		}
	}
}

// column returns the largest x >= 0 with x(x-1) + y² <= r², for 0 <= y <= r.
func column(y, r int) int {
	rem := r*r - y*y
	if rem < 0 {
		return 0
	}
	x := int((1 + math.Sqrt(float64(1+4*rem))) / 2)
	for x > 0 && x*(x-1) > rem {
		x--
	}
	for (x+1)*x <= rem {
		x++
	}
	return x
}

func plotOctants(dst Surface, cx, cy, x, y int, c color.NRGBA) {
	plot(dst, cx+x, cy+y, c)
	plot(dst, cx+y, cy+x, c)
	plot(dst, cx-y, cy+x, c)
	plot(dst, cx-x, cy+y, c)
	plot(dst, cx-x, cy-y, c)
	plot(dst, cx-y, cy-x, c)
	plot(dst, cx+y, cy-x, c)
	plot(dst, cx+x, cy-y, c)
}
