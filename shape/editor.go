package shape

import (
	"image"
	"image/color"

	"github.com/gogpu/sketch/canvas"
	"github.com/gogpu/sketch/raster"
)

// handleSize is the side of the square drawn for each handle.
const handleSize = 5

// Editor drives one edit gesture on a Record.
//
// Begin lifts the shape off the persistent buffer, DragTo moves the grabbed
// handle, Preview draws the moving shape into the overlay and Commit puts it
// back. The zero value is idle.
type Editor struct {
	rec    Record
	handle Handle
	active bool

	// Geometry at grab time; midpoint drags translate from here.
	grab   image.Point
	origP1 image.Point
	origP2 image.Point
}

// Begin starts editing rec if p lies within radius of one of its handles.
// On success the shape's bounds are cleared to bg in persistent so the old
// pixels do not linger under the preview.
func (e *Editor) Begin(rec Record, p image.Point, radius int, persistent *canvas.Pixmap, bg color.NRGBA) bool {
	h, ok := rec.HitHandle(p, radius)
	if !ok {
		return false
	}
	*e = Editor{
		rec:    rec,
		handle: h,
		active: true,
		grab:   p,
		origP1: rec.P1,
		origP2: rec.P2,
	}
	persistent.FillRect(rec.Bounds(), bg)
	return true
}

// DragTo moves the grabbed handle to p. Endpoint handles move only their
// endpoint; the midpoint handle translates both by the pointer delta since
// Begin.
func (e *Editor) DragTo(p image.Point) {
	if !e.active {
		return
	}
	switch e.handle {
	case HandleP1:
		e.rec.P1 = p
	case HandleP2:
		e.rec.P2 = p
	case HandleMid:
		delta := p.Sub(e.grab)
		e.rec.P1 = e.origP1.Add(delta)
		e.rec.P2 = e.origP2.Add(delta)
	}
}

// Preview draws the shape in its current geometry into overlay.
func (e *Editor) Preview(overlay raster.Surface) {
	if e.active {
		e.rec.Draw(overlay)
	}
}

// Commit draws the edited shape into persistent, ends the gesture and
// returns the updated record.
func (e *Editor) Commit(persistent raster.Surface) Record {
	if e.active {
		e.rec.Draw(persistent)
		e.active = false
	}
	return e.rec
}

// Active reports whether an edit gesture is in progress.
func (e *Editor) Active() bool { return e.active }

// Handle returns the handle grabbed by the current gesture.
func (e *Editor) Handle() Handle { return e.handle }

// Record returns the record in its current geometry.
func (e *Editor) Record() Record { return e.rec }

// DrawHandles paints a small square on each of rec's handles.
func DrawHandles(dst raster.Surface, rec Record, c color.NRGBA) {
	for _, h := range rec.Handles() {
		raster.Stamp(dst, h, handleSize, c)
	}
}
