// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
	"sort"
)

// coordLimit bounds the coordinates the rasterizers step through. Segments
// reaching past ±coordLimit are cut to that square before stepping, and
// circles with a larger radius are not drawn. Products of two in-range
// deltas fit in an int64.
const coordLimit = 1 << 29

func inLimit(p image.Point) bool {
	return p.X >= -coordLimit && p.X <= coordLimit && p.Y >= -coordLimit && p.Y <= coordLimit
}

// limitSegment cuts a-b to the ±coordLimit square (Liang-Barsky). skipped is
// the number of major-axis steps of the original segment before the new
// start, reduced modulo period. ok is false when nothing of the segment is
// left.
func limitSegment(a, b image.Point, period int) (na, nb image.Point, skipped int, ok bool) {
	if inLimit(a) && inLimit(b) {
		return a, b, 0, true
	}

	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-ax, float64(b.Y)-ay
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = math.Min(t1, r)
		}
		return true
	}
	const lim = float64(coordLimit)
	if !clip(-dx, ax+lim) || !clip(dx, lim-ax) || !clip(-dy, ay+lim) || !clip(dy, lim-ay) {
		return a, b, 0, false
	}

	at := func(t float64) image.Point {
		x := math.Max(-lim, math.Min(lim, math.Round(ax+t*dx)))
		y := math.Max(-lim, math.Min(lim, math.Round(ay+t*dy)))
		return image.Pt(int(x), int(y))
	}
	steps := math.Round(t0 * math.Max(math.Abs(dx), math.Abs(dy)))
	skipped = int(math.Mod(steps, float64(max(period, 1))))
	return at(t0), at(t1), skipped, true
}

// span returns the first and last i in [0, n] with lo <= f(i) <= hi, for f
// monotone in i.
func span(n, lo, hi int, f func(int) int) (first, last int, ok bool) {
	if f(n) >= f(0) {
		first = sort.Search(n+1, func(i int) bool { return f(i) >= lo })
		last = sort.Search(n+1, func(i int) bool { return f(i) > hi }) - 1
	} else {
		first = sort.Search(n+1, func(i int) bool { return f(i) <= hi })
		last = sort.Search(n+1, func(i int) bool { return f(i) < lo }) - 1
	}
	return first, last, first <= last
}

// visibleSteps returns the range of step indices in [0, n] whose stamp of
// the given radius can touch dst. at must be monotone in each axis.
func visibleSteps(dst Surface, n, radius int, at func(int) image.Point) (first, last int, ok bool) {
	x0, x1, okx := span(n, -radius, dst.Width()-1+radius, func(i int) int { return at(i).X })
	y0, y1, oky := span(n, -radius, dst.Height()-1+radius, func(i int) int { return at(i).Y })
	if !okx || !oky {
		return 0, 0, false
	}
	first, last = max(x0, y0), min(x1, y1)
	return first, last, first <= last
}

// ceilDiv returns ⌈a/b⌉ for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
