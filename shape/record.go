// Package shape holds the last committed primitive and the post-hoc editing
// of it through endpoint and midpoint handles.
//
// Only lines, rectangles and circles are editable. A session keeps at most
// one Record at a time, wrapped in an Editable that is replaced wholesale at
// every commit, tool switch, polygon close and clear.
package shape

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/sketch/raster"
)

// Kind identifies the primitive a Record draws.
type Kind int

const (
	// Line is drawn from P1 to P2.
	Line Kind = iota
	// Rectangle has P1 and P2 as opposite corners.
	Rectangle
	// Circle is centred on P1 and passes through P2.
	Circle
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Rectangle:
		return "rectangle"
	case Circle:
		return "circle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Handle names one of the three grab points of a Record.
type Handle int

const (
	HandleP1 Handle = iota
	HandleP2
	HandleMid
)

func (h Handle) String() string {
	switch h {
	case HandleP1:
		return "p1"
	case HandleP2:
		return "p2"
	case HandleMid:
		return "mid"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// Record describes one committed primitive that can still be edited.
//
// A square-constrained rectangle stores its constrained corner in P2, so
// redrawing a Record never needs the modifier state that produced it.
type Record struct {
	Kind      Kind
	P1, P2    image.Point
	Color     color.NRGBA
	Thickness int
	Style     raster.Style
}

// Draw rasterizes the record into dst.
func (r Record) Draw(dst raster.Surface) {
	switch r.Kind {
	case Line:
		raster.Line(dst, r.P1, r.P2, r.Color, r.Thickness, r.Style)
	case Rectangle:
		raster.Rectangle(dst, r.P1, r.P2, r.Color, r.Thickness, r.Style, false)
	case Circle:
		raster.Circle(dst, r.P1, r.P2, r.Color, r.Thickness, r.Style)
	}
}

// Midpoint returns the point halfway between P1 and P2. It is computed on
// demand and never stored.
func (r Record) Midpoint() image.Point {
	return image.Pt((r.P1.X+r.P2.X)/2, (r.P1.Y+r.P2.Y)/2)
}

// Handles returns the grab points in hit-test order: P1, P2, midpoint.
func (r Record) Handles() [3]image.Point {
	return [3]image.Point{r.P1, r.P2, r.Midpoint()}
}

// HitHandle returns the first handle within radius pixels of p. Endpoints
// are tested before the midpoint.
func (r Record) HitHandle(p image.Point, radius int) (Handle, bool) {
	for i, h := range r.Handles() {
		d := p.Sub(h)
		if d.X < -radius || d.X > radius || d.Y < -radius || d.Y > radius {
			continue
		}
		if d.X*d.X+d.Y*d.Y <= radius*radius {
			return Handle(i), true
		}
	}
	return 0, false
}

// Bounds returns the half-open rectangle covering every pixel Draw may
// write, brush half-size included.
func (r Record) Bounds() image.Rectangle {
	half := max(r.Thickness, 1) / 2
	if r.Kind == Circle {
		d := r.P2.Sub(r.P1)
		radius := int(math.Round(math.Hypot(float64(d.X), float64(d.Y))))
		ext := radius + half
		return image.Rect(r.P1.X-ext, r.P1.Y-ext, r.P1.X+ext+1, r.P1.Y+ext+1)
	}
	return image.Rect(
		min(r.P1.X, r.P2.X)-half,
		min(r.P1.Y, r.P2.Y)-half,
		max(r.P1.X, r.P2.X)+half+1,
		max(r.P1.Y, r.P2.Y)+half+1,
	)
}

// Editable is either empty or holds exactly one Record.
//
// The zero value is empty.
type Editable struct {
	rec Record
	ok  bool
}

// None returns an empty Editable.
func None() Editable { return Editable{} }

// Some returns an Editable holding rec.
func Some(rec Record) Editable { return Editable{rec: rec, ok: true} }

// Get returns the held record and whether there is one.
func (e Editable) Get() (Record, bool) { return e.rec, e.ok }

// IsSome reports whether a record is held.
func (e Editable) IsSome() bool { return e.ok }
