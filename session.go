package sketch

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/sketch/canvas"
	"github.com/gogpu/sketch/raster"
	"github.com/gogpu/sketch/selection"
	"github.com/gogpu/sketch/shape"
)

// Colors of transient overlay elements.
var (
	handleColor     = canvas.Cyan
	rubberBandColor = canvas.Gray
)

// Session is an interactive drawing session over one canvas.
//
// Pointer-down is dispatched on the active tool; drag and release are
// dispatched through per-mode handler tables. Every event performs at most
// one engine operation and then redraws the overlay and composites the
// frame.
//
// Session is not safe for concurrent use.
type Session struct {
	id  string
	log *slog.Logger

	canvas         *canvas.Canvas
	handleRadius   int
	closeTolerance int
	repaint        func()

	color     color.NRGBA
	thickness int
	style     raster.Style
	tool      Tool
	mode      Mode

	// Primitive gesture.
	anchor  image.Point
	current image.Point
	shift   bool

	// Last freehand stamp.
	last image.Point

	hover    image.Point
	hovering bool

	polygon  raster.Polygon
	editable shape.Editable
	editor   shape.Editor
	sel      *selection.Selection
}

// gestureHandler handles a drag or release in one mode.
type gestureHandler func(s *Session, p image.Point, shift bool)

var dragHandlers = [modeCount]gestureHandler{
	ModeDrawingPrimitive:  (*Session).dragPrimitive,
	ModeEditingLastShape:  (*Session).dragEditing,
	ModePolygonInProgress: (*Session).dragPolygon,
	ModeSelectingRegion:   (*Session).dragSelecting,
	ModeDraggingSelection: (*Session).dragMovingSelection,
	ModeResizingSelection: (*Session).dragResizingSelection,
	ModeStrokingFreehand:  (*Session).dragFreehand,
}

var upHandlers = [modeCount]gestureHandler{
	ModeDrawingPrimitive:  (*Session).upPrimitive,
	ModeEditingLastShape:  (*Session).upEditing,
	ModeSelectingRegion:   (*Session).upSelecting,
	ModeDraggingSelection: (*Session).upMovingSelection,
	ModeResizingSelection: (*Session).upResizingSelection,
	ModeStrokingFreehand:  (*Session).upFreehand,
}

// NewSession creates a session with a width×height canvas.
//
// It returns an error wrapping canvas.ErrInvalidDimensions for a
// non-positive size and ErrUnknownTool for an undefined initial tool.
func NewSession(width, height int, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.tool.valid() {
		return nil, fmt.Errorf("sketch: new session: %w: %v", ErrUnknownTool, o.tool)
	}

	c, err := canvas.New(width, height, o.background)
	if err != nil {
		return nil, fmt.Errorf("sketch: new session: %w", err)
	}

	id := uuid.NewString()
	s := &Session{
		id:             id,
		log:            Logger().With("session", id),
		canvas:         c,
		handleRadius:   o.handleRadius,
		closeTolerance: o.closeTolerance,
		repaint:        o.repaint,
		color:          canvas.Opaque(o.color),
		thickness:      o.thickness,
		style:          o.style,
		tool:           o.tool,
		sel:            selection.New(c.Background(), o.handleRadius),
	}
	c.Composite()

	s.log.Info("sketch: session created",
		"width", width,
		"height", height,
		"tool", s.tool,
		"background", canvas.FormatHex(c.Background()))
	return s, nil
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string { return s.id }

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.tool }

// Mode returns the gesture in progress.
func (s *Session) Mode() Mode { return s.mode }

// Color returns the pen color.
func (s *Session) Color() color.NRGBA { return s.color }

// Thickness returns the pen thickness.
func (s *Session) Thickness() int { return s.thickness }

// Style returns the stroke style.
func (s *Session) Style() raster.Style { return s.style }

// Background returns the canvas background color.
func (s *Session) Background() color.NRGBA { return s.canvas.Background() }

// Persistent returns the committed drawing. It is owned by the session.
func (s *Session) Persistent() *canvas.Pixmap { return s.canvas.Persistent() }

// Frame returns the composite of the persistent and overlay buffers as of
// the last event. It is owned by the session and reused between events.
func (s *Session) Frame() *image.RGBA { return s.canvas.Frame() }

// Editable returns the primitive that can currently be edited, if any.
func (s *Session) Editable() shape.Editable { return s.editable }

// Polygon returns the vertices of the polygon in progress. The slice is
// only valid until the next event.
func (s *Session) Polygon() []image.Point { return s.polygon.Points() }

// Selection returns the selection rectangle and whether pixels are
// captured in it.
func (s *Session) Selection() (image.Rectangle, bool) {
	return s.sel.Rect(), s.sel.Captured() != nil
}

// SetColor sets the pen color. Alpha is forced to 255 since the persistent
// buffer is opaque.
func (s *Session) SetColor(c color.NRGBA) {
	s.color = canvas.Opaque(c)
	s.log.Debug("sketch: color", "color", canvas.FormatHex(s.color))
}

// SetThickness sets the pen thickness. Values below 1 are clamped to 1.
func (s *Session) SetThickness(t int) {
	if t < 1 {
		s.log.Warn("sketch: thickness clamped", "requested", t)
		t = 1
	}
	s.thickness = t
	s.log.Debug("sketch: thickness", "thickness", t)
}

// SetStyle sets the stroke style.
func (s *Session) SetStyle(style raster.Style) {
	s.style = style
	s.log.Debug("sketch: style", "style", style)
}

// SelectTool makes t the active tool.
//
// Switching to a different tool first finishes whatever is in progress: an
// open polygon is closed into the persistent buffer, a pending selection
// move is committed, a shape edit in progress is committed, and the
// editable primitive is dropped. The session then returns to ModeIdle.
// Selecting the active tool again does nothing.
func (s *Session) SelectTool(t Tool) {
	if !t.valid() {
		s.log.Warn("sketch: ignoring unknown tool", "tool", t)
		return
	}
	if t == s.tool {
		return
	}
	s.finish()
	s.log.Debug("sketch: tool", "from", s.tool, "to", t)
	s.tool = t
	s.redraw()
}

// finish cleanly exits the current mode and tool state.
func (s *Session) finish() {
	persistent := s.canvas.Persistent()

	if s.polygon.Len() > 0 {
		s.polygon.Draw(persistent, s.color, s.thickness, s.style, true)
		s.polygon.Clear()
	}
	if s.sel.Active() {
		s.sel.Commit(persistent)
	}
	if s.editor.Active() {
		s.editor.Commit(persistent)
	}
	s.editable = shape.None()
	s.hovering = false
	s.setMode(ModeIdle)
}

// Clear resets both buffers to the background and discards every shape,
// polygon and selection in progress.
func (s *Session) Clear() {
	s.canvas.Reset()
	s.polygon.Clear()
	s.sel.Reset()
	s.editor = shape.Editor{}
	s.editable = shape.None()
	s.hovering = false
	s.setMode(ModeIdle)
	s.log.Info("sketch: canvas cleared")
	s.redraw()
}

// PointerDown starts a gesture at (x, y) with the active tool.
func (s *Session) PointerDown(x, y int, shift bool) {
	p := image.Pt(x, y)
	switch {
	case s.tool.editable():
		s.downPrimitive(p, shift)
	case s.tool == ToolPolygon:
		s.downPolygon(p)
	case s.tool == ToolFill:
		s.downFill(p)
	case s.tool == ToolSelection:
		s.downSelection(p)
	case s.tool == ToolBrush, s.tool == ToolEraser:
		s.downFreehand(p)
	}
	s.redraw()
}

// PointerDrag continues the gesture in progress.
func (s *Session) PointerDrag(x, y int, shift bool) {
	if h := dragHandlers[s.mode]; h != nil {
		h(s, image.Pt(x, y), shift)
		s.redraw()
	}
}

// PointerUp ends the gesture in progress at (x, y). Coordinates outside the
// canvas are accepted; the gesture is finalized there and clipped.
func (s *Session) PointerUp(x, y int, shift bool) {
	if h := upHandlers[s.mode]; h != nil {
		h(s, image.Pt(x, y), shift)
		s.redraw()
	}
}

// PointerMove tracks the hover position with no button held. It drives the
// polygon rubber band.
func (s *Session) PointerMove(x, y int) {
	s.hover = image.Pt(x, y)
	s.hovering = true
	if s.mode == ModePolygonInProgress {
		s.redraw()
	}
}

func (s *Session) setMode(m Mode) {
	if m == s.mode {
		return
	}
	s.log.Debug("sketch: mode", "from", s.mode, "to", m)
	s.mode = m
}

// Line, rectangle and circle.

func (s *Session) downPrimitive(p image.Point, shift bool) {
	if rec, ok := s.editable.Get(); ok {
		if s.editor.Begin(rec, p, s.handleRadius, s.canvas.Persistent(), s.canvas.Background()) {
			s.log.Debug("sketch: editing", "kind", rec.Kind, "handle", s.editor.Handle())
			s.setMode(ModeEditingLastShape)
			return
		}
	}
	s.editable = shape.None()
	s.anchor, s.current, s.shift = p, p, shift
	s.setMode(ModeDrawingPrimitive)
}

func (s *Session) dragPrimitive(p image.Point, shift bool) {
	s.current, s.shift = p, shift
}

func (s *Session) upPrimitive(p image.Point, shift bool) {
	s.current, s.shift = p, shift
	s.setMode(ModeIdle)

	rec := s.primitive()
	if rec.P1 == rec.P2 {
		return
	}
	rec.Draw(s.canvas.Persistent())
	s.editable = shape.Some(rec)
	s.log.Debug("sketch: commit", "kind", rec.Kind, "p1", rec.P1, "p2", rec.P2)
}

// primitive returns the record for the gesture in progress, with the shift
// constraint of the active tool applied.
func (s *Session) primitive() shape.Record {
	rec := shape.Record{
		P1:        s.anchor,
		P2:        s.current,
		Color:     s.color,
		Thickness: s.thickness,
		Style:     s.style,
	}
	switch s.tool {
	case ToolLine:
		rec.Kind = shape.Line
		if s.shift {
			rec.P2 = raster.SnapTo45(rec.P1, rec.P2)
		}
	case ToolRectangle:
		rec.Kind = shape.Rectangle
		if s.shift {
			rec.P2 = raster.SquareCorner(rec.P1, rec.P2)
		}
	case ToolCircle:
		rec.Kind = shape.Circle
	}
	return rec
}

func (s *Session) dragEditing(p image.Point, _ bool) {
	s.editor.DragTo(p)
}

func (s *Session) upEditing(p image.Point, _ bool) {
	s.editor.DragTo(p)
	rec := s.editor.Commit(s.canvas.Persistent())
	s.editable = shape.Some(rec)
	s.log.Debug("sketch: edit commit", "kind", rec.Kind, "p1", rec.P1, "p2", rec.P2)
	s.setMode(ModeIdle)
}

// Polygon.

func (s *Session) downPolygon(p image.Point) {
	if s.polygon.Len() >= 3 && s.polygon.IsCloseToFirst(p, s.closeTolerance) {
		s.polygon.Draw(s.canvas.Persistent(), s.color, s.thickness, s.style, true)
		s.log.Debug("sketch: polygon closed", "vertices", s.polygon.Len())
		s.polygon.Clear()
		s.editable = shape.None()
		s.setMode(ModeIdle)
		return
	}
	s.polygon.AddPoint(p)
	s.setMode(ModePolygonInProgress)
}

func (s *Session) dragPolygon(p image.Point, _ bool) {
	s.hover = p
	s.hovering = true
}

// Fill.

func (s *Session) downFill(p image.Point) {
	raster.FloodFill(s.canvas.Persistent(), p, s.color)
}

// Selection.

func (s *Session) downSelection(p image.Point) {
	if c, ok := s.sel.HitHandle(p); ok {
		s.sel.BeginResize(c)
		s.setMode(ModeResizingSelection)
		return
	}
	if s.sel.Contains(p) {
		s.sel.BeginMove(p)
		s.setMode(ModeDraggingSelection)
		return
	}
	s.sel.Begin(s.canvas.Persistent(), p)
	s.setMode(ModeSelectingRegion)
}

func (s *Session) dragSelecting(p image.Point, _ bool) {
	s.sel.Grow(p)
}

func (s *Session) upSelecting(p image.Point, _ bool) {
	s.sel.Grow(p)
	if !s.sel.Capture(s.canvas.Persistent()) {
		s.log.Debug("sketch: empty selection discarded")
	}
	s.setMode(ModeIdle)
}

func (s *Session) dragMovingSelection(p image.Point, _ bool) {
	s.sel.MoveTo(p)
}

func (s *Session) upMovingSelection(p image.Point, _ bool) {
	s.sel.MoveTo(p)
	s.sel.CommitMove(s.canvas.Persistent())
	s.setMode(ModeIdle)
}

func (s *Session) dragResizingSelection(p image.Point, _ bool) {
	s.sel.ResizeTo(p)
}

func (s *Session) upResizingSelection(p image.Point, _ bool) {
	s.sel.ResizeTo(p)
	s.sel.Capture(s.canvas.Persistent())
	s.setMode(ModeIdle)
}

// Brush and eraser.

func (s *Session) ink() color.NRGBA {
	if s.tool == ToolEraser {
		return s.canvas.Background()
	}
	return s.color
}

func (s *Session) downFreehand(p image.Point) {
	raster.Stamp(s.canvas.Persistent(), p, s.thickness, s.ink())
	s.last = p
	s.setMode(ModeStrokingFreehand)
}

func (s *Session) dragFreehand(p image.Point, _ bool) {
	raster.StampSegment(s.canvas.Persistent(), s.last, p, s.thickness, s.ink())
	s.last = p
}

func (s *Session) upFreehand(p image.Point, shift bool) {
	s.dragFreehand(p, shift)
	s.setMode(ModeIdle)
}

// redraw repaints the overlay from the current state and composites the
// frame.
func (s *Session) redraw() {
	s.canvas.ClearOverlay()
	overlay := s.canvas.Overlay()

	switch s.mode {
	case ModeDrawingPrimitive:
		s.primitive().Draw(overlay)
	case ModeEditingLastShape:
		s.editor.Preview(overlay)
		shape.DrawHandles(overlay, s.editor.Record(), handleColor)
	default:
		if rec, ok := s.editable.Get(); ok {
			shape.DrawHandles(overlay, rec, handleColor)
		}
	}

	if s.polygon.Len() > 0 {
		s.polygon.Draw(overlay, s.color, s.thickness, s.style, false)
		if last, ok := s.polygon.Last(); ok && s.hovering {
			raster.Line(overlay, last, s.hover, rubberBandColor, s.thickness, s.style)
		}
	}

	s.sel.Draw(overlay)
	s.canvas.Composite()

	if s.repaint != nil {
		s.repaint()
	}
}
