// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster scan-converts drawing primitives into a pixel Surface.
//
// Every function writes straight into the Surface it is given and never keeps
// a reference to it. Writes that fall outside [0,width)×[0,height) are
// discarded, so callers may pass arbitrary coordinates.
//
// # Primitives
//
//   - Line: integer Bresenham with a square brush and a stroke Style.
//   - Circle: midpoint circle, thickness drawn as concentric rings.
//   - Rectangle: four Line calls along the clipped corners.
//   - Polygon: an accumulator of clicked vertices drawn as connected lines.
//   - FloodFill: 4-connected region fill driven by a FIFO queue.
//   - Stamp, StampSegment: freehand brush and eraser coverage.
//
// # Stroke styles
//
// Dash and gap lengths scale with the thickness so that a thick dashed line
// still reads as dashed:
//
//	Solid   paint every step
//	Dashed  3t on, 3t off
//	Dotted  t on, 2t off
//
// Circles use a fixed per-iteration pattern instead: {1}, {1,1,1,1,0,0,0,0}
// and {1,0,0,0}.
package raster

import "image/color"

// Surface is the pixel buffer a rasterizer draws into.
//
// SetPixel must ignore coordinates outside the surface and Pixel must return
// the zero color for them; rasterizers bounds-check as well.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.NRGBA)
	Pixel(x, y int) color.NRGBA
}

// inside reports whether (x, y) addresses a pixel of dst.
func inside(dst Surface, x, y int) bool {
	return x >= 0 && y >= 0 && x < dst.Width() && y < dst.Height()
}

// plot writes a single pixel if it lies inside dst.
func plot(dst Surface, x, y int, c color.NRGBA) {
	if inside(dst, x, y) {
		dst.SetPixel(x, y, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// clampThickness maps non-positive thickness to 1.
func clampThickness(t int) int {
	if t < 1 {
		return 1
	}
	return t
}
