// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

// Polygon accumulates vertices from successive clicks.
//
// Vertices are append-only until Clear. The zero value is an empty polygon
// ready for use.
type Polygon struct {
	points []image.Point
}

// AddPoint appends a vertex.
func (p *Polygon) AddPoint(pt image.Point) {
	p.points = append(p.points, pt)
}

// IsCloseToFirst reports whether pt lies within tolerance pixels of the
// first vertex. An empty polygon is never close.
func (p *Polygon) IsCloseToFirst(pt image.Point, tolerance int) bool {
	if len(p.points) == 0 {
		return false
	}
	d := pt.Sub(p.points[0])
	if abs(d.X) > tolerance || abs(d.Y) > tolerance {
		return false
	}
	return d.X*d.X+d.Y*d.Y <= tolerance*tolerance
}

// Draw connects every consecutive pair of vertices in insertion order. When
// close is set and there are at least three vertices, the last vertex is
// also connected back to the first.
func (p *Polygon) Draw(dst Surface, c color.NRGBA, thickness int, style Style, close bool) {
	for i := 1; i < len(p.points); i++ {
		Line(dst, p.points[i-1], p.points[i], c, thickness, style)
	}
	if close && len(p.points) > 2 {
		Line(dst, p.points[len(p.points)-1], p.points[0], c, thickness, style)
	}
}

// Clear removes all vertices.
func (p *Polygon) Clear() {
	p.points = p.points[:0]
}

// Points returns the vertices in insertion order. The slice is owned by the
// polygon and is only valid until the next AddPoint or Clear.
func (p *Polygon) Points() []image.Point {
	return p.points
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.points)
}

// Last returns the most recently added vertex.
func (p *Polygon) Last() (image.Point, bool) {
	if len(p.points) == 0 {
		return image.Point{}, false
	}
	return p.points[len(p.points)-1], true
}
