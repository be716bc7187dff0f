// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

// FloodFill replaces the 4-connected region containing start, taken in its
// original color, with fill.
//
// The fill is breadth-first over an explicit FIFO queue, so its size is
// bounded by memory rather than stack depth. Pixels are recolored as they are
// enqueued, which keeps every pixel in the queue at most once. Filling with
// the color already under start, or from outside the surface, is a no-op.
func FloodFill(dst Surface, start image.Point, fill color.NRGBA) {
	if !inside(dst, start.X, start.Y) {
		return
	}
	target := dst.Pixel(start.X, start.Y)
	if target == fill {
		return
	}

	dst.SetPixel(start.X, start.Y, fill)
	queue := []image.Point{start}

	visit := func(x, y int) {
		if !inside(dst, x, y) || dst.Pixel(x, y) != target {
			return
		}
		dst.SetPixel(x, y, fill)
		queue = append(queue, image.Pt(x, y))
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		visit(p.X+1, p.Y)
		visit(p.X-1, p.Y)
		visit(p.X, p.Y+1)
		visit(p.X, p.Y-1)

		// Drop the consumed prefix once it dominates the backing array.
		if head > 4096 && head*2 > len(queue) {
			queue = append(queue[:0], queue[head+1:]...)
			head = -1
		}
	}
}
