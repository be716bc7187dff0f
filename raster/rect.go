// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

// SquareCorner returns the corner opposite p1 of the largest square that
// fits in the box spanned by p1 and p2. The longer side is clamped to the
// shorter one and the direction away from p1 is preserved.
func SquareCorner(p1, p2 image.Point) image.Point {
	size := min(abs(p2.X-p1.X), abs(p2.Y-p1.Y))
	x := p1.X + size
	if p2.X < p1.X {
		x = p1.X - size
	}
	y := p1.Y + size
	if p2.Y < p1.Y {
		y = p1.Y - size
	}
	return image.Pt(x, y)
}

// Rectangle draws the axis-aligned rectangle with diagonal p1–p2.
//
// When square is set the diagonal is first constrained by SquareCorner. The
// corners are clipped to the surface and the four edges are drawn with Line
// in the order top, right, bottom, left, so thickness and style behave
// exactly as for lines.
func Rectangle(dst Surface, p1, p2 image.Point, c color.NRGBA, thickness int, style Style, square bool) {
	if square {
		p2 = SquareCorner(p1, p2)
	}

	minX := max(min(p1.X, p2.X), 0)
	minY := max(min(p1.Y, p2.Y), 0)
	maxX := min(max(p1.X, p2.X), dst.Width()-1)
	maxY := min(max(p1.Y, p2.Y), dst.Height()-1)
	if minX > maxX || minY > maxY {
		return
	}

	topLeft := image.Pt(minX, minY)
	topRight := image.Pt(maxX, minY)
	bottomLeft := image.Pt(minX, maxY)
	bottomRight := image.Pt(maxX, maxY)

	Line(dst, topLeft, topRight, c, thickness, style)
	Line(dst, topRight, bottomRight, c, thickness, style)
	Line(dst, bottomRight, bottomLeft, c, thickness, style)
	Line(dst, bottomLeft, topLeft, c, thickness, style)
}
