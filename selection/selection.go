// Package selection implements rectangular region capture, move and resize
// on a persistent pixel buffer.
//
// A gesture starts with Begin, which snapshots the buffer, and Grow, which
// tracks the marquee. Capture copies the marked pixels. From there the region
// can be dragged (BeginMove, MoveTo, CommitMove) or resized by a corner
// handle (BeginResize, ResizeTo, then Capture again).
//
// Rectangles are half-open: Rect().Min is the first captured pixel and
// Rect().Max is one past the last, which is also where the bottom-right
// handle sits.
package selection

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/sketch/canvas"
	"github.com/gogpu/sketch/raster"
)

// Corner identifies a resize handle.
type Corner int

// Corners in hit-test order.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// DefaultRadius is the handle grab radius used when New is given none.
const DefaultRadius = 10

// markerArm is the half-length of the cross drawn on each handle.
const markerArm = 5

// Selection is the state of one rectangular selection.
//
// The zero value is inactive; use New to set the background used to blank
// vacated pixels.
type Selection struct {
	background color.NRGBA
	radius     int

	active   bool
	anchor   image.Point
	rect     image.Rectangle
	captured *canvas.Pixmap
	source   image.Rectangle
	backup   *canvas.Pixmap

	moving bool
	grab   image.Point
	fixed  image.Point
}

// New returns an inactive selection that blanks vacated pixels with
// background and grabs handles within radius pixels.
func New(background color.NRGBA, radius int) *Selection {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Selection{background: background, radius: radius}
}

// Begin starts a fresh marquee at p and snapshots persistent as the
// restoration point for later moves.
func (s *Selection) Begin(persistent *canvas.Pixmap, p image.Point) {
	s.Reset()
	s.active = true
	s.anchor = p
	s.rect = image.Rectangle{Min: p, Max: p}
	s.backup = persistent.Clone()
}

// Grow stretches the marquee from its anchor to p.
func (s *Selection) Grow(p image.Point) {
	if !s.active {
		return
	}
	s.rect = image.Rectangle{Min: s.anchor, Max: p}.Canon()
}

// Capture clips the marquee to persistent and copies the pixels inside it.
// It reports false, and deactivates the selection, when nothing is left
// after clipping.
func (s *Selection) Capture(persistent *canvas.Pixmap) bool {
	if !s.active {
		return false
	}
	r := s.rect.Intersect(persistent.Bounds())
	if r.Empty() {
		s.Reset()
		return false
	}
	s.rect = r
	s.source = r
	s.captured = persistent.Crop(r)
	s.moving = false
	return true
}

// corners returns the handle positions in hit-test order.
func (s *Selection) corners() [4]image.Point {
	r := s.rect
	return [4]image.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		r.Max,
	}
}

// HitHandle returns the first corner handle within the grab radius of p.
// Only a captured selection has handles.
func (s *Selection) HitHandle(p image.Point) (Corner, bool) {
	if s.captured == nil {
		return 0, false
	}
	for i, c := range s.corners() {
		d := p.Sub(c)
		if d.X < -s.radius || d.X > s.radius || d.Y < -s.radius || d.Y > s.radius {
			continue
		}
		if d.X*d.X+d.Y*d.Y <= s.radius*s.radius {
			return Corner(i), true
		}
	}
	return 0, false
}

// Contains reports whether p lies inside a captured selection.
func (s *Selection) Contains(p image.Point) bool {
	return s.captured != nil && p.In(s.rect)
}

// BeginMove records the offset of p from the selection's top-left corner.
func (s *Selection) BeginMove(p image.Point) {
	if s.captured == nil {
		return
	}
	s.grab = p.Sub(s.rect.Min)
	s.moving = true
}

// MoveTo places the selection's top-left corner at p minus the grab offset.
// The size is unchanged.
func (s *Selection) MoveTo(p image.Point) {
	if !s.moving {
		return
	}
	s.rect = s.rect.Add(p.Sub(s.grab).Sub(s.rect.Min))
}

// CommitMove writes the moved pixels into persistent: the snapshot is
// restored, the rectangle they were captured from is blanked, and the
// captured pixels are copied to the current position.
//
// The result becomes the new restoration point, so successive moves
// compose.
func (s *Selection) CommitMove(persistent *canvas.Pixmap) {
	if s.captured == nil {
		return
	}
	persistent.CopyFrom(s.backup)
	persistent.FillRect(s.source, s.background)
	persistent.Blit(s.captured, s.rect.Min)

	s.moving = false
	s.backup = persistent.Clone()
	s.rect = s.rect.Intersect(persistent.Bounds())
	s.source = s.rect
	s.captured = persistent.Crop(s.rect)
	if s.captured == nil {
		s.Reset()
	}
}

// BeginResize holds the corner opposite c fixed for the following ResizeTo
// calls.
func (s *Selection) BeginResize(c Corner) {
	corners := s.corners()
	s.fixed = corners[3-c]
}

// ResizeTo moves the grabbed corner to p. The rectangle stays normalized
// when p crosses the fixed corner.
func (s *Selection) ResizeTo(p image.Point) {
	if s.captured == nil {
		return
	}
	s.rect = image.Rectangle{Min: s.fixed, Max: p}.Canon()
}

// Commit applies any captured pixels at their current position and clears
// the selection.
func (s *Selection) Commit(persistent *canvas.Pixmap) {
	if s.moving {
		s.CommitMove(persistent)
	}
	s.Reset()
}

// Reset drops all selection state without touching any buffer.
func (s *Selection) Reset() {
	bg, radius := s.background, s.radius
	*s = Selection{background: bg, radius: radius}
}

// Rect returns the current, normalized selection rectangle.
func (s *Selection) Rect() image.Rectangle { return s.rect }

// Captured returns the captured pixels, or nil before a successful Capture.
func (s *Selection) Captured() *canvas.Pixmap { return s.captured }

// Active reports whether a marquee or captured region exists.
func (s *Selection) Active() bool { return s.active }

// Draw paints the selection into overlay: the vacated rectangle and the
// captured pixels at their current position while they are being moved, a
// dashed marquee and a cross on each corner handle.
func (s *Selection) Draw(overlay *canvas.Pixmap) {
	if !s.active {
		return
	}
	if s.moving {
		overlay.FillRect(s.source, s.background)
		overlay.Blit(s.captured, s.rect.Min)
	}

	raster.Rectangle(overlay, s.rect.Min, s.rect.Max, canvas.Cyan, 1, raster.Dashed, false)
	if s.captured == nil {
		return
	}
	for _, c := range s.corners() {
		raster.Line(overlay, c.Add(image.Pt(0, -markerArm)), c.Add(image.Pt(0, markerArm)), canvas.Cyan, 1, raster.Solid)
		raster.Line(overlay, c.Add(image.Pt(-markerArm, 0)), c.Add(image.Pt(markerArm, 0)), canvas.Cyan, 1, raster.Solid)
	}
}
