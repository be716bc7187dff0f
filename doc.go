// Package sketch is a 2D raster drawing surface driven by pointer gestures.
//
// # Overview
//
// A Session owns a canvas with two buffers: the persistent buffer holding the
// ink committed so far and a transparent overlay used for live previews,
// selection marquees and handles. Pointer events are routed to the active
// tool, the affected buffer is updated, and a composite frame is produced
// after every event.
//
// # Quick Start
//
//	s, err := sketch.NewSession(640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s.SelectTool(sketch.ToolRectangle)
//	s.SetThickness(3)
//	s.PointerDown(10, 10, false)
//	s.PointerDrag(120, 80, false)
//	s.PointerUp(120, 80, false)
//
//	frame := s.Frame() // *image.RGBA
//
// # Tools
//
// Line, rectangle and circle are dragged out with a live preview and stay
// editable through their endpoint and midpoint handles until the next
// primitive or tool switch. Holding shift snaps lines to 45° and constrains
// rectangles to squares. Polygons are built click by click and close when a
// click lands near the first vertex. Fill floods the 4-connected region
// under the pointer. Selection captures a rectangle that can be moved or
// resized by its corner handles. Brush and eraser stamp a square along the
// pointer path.
//
// # Architecture
//
// The package is organized into:
//   - canvas: persistent and overlay buffers, compositing
//   - raster: scan conversion of lines, circles, rectangles, polygons,
//     flood fill and freehand stamps
//   - shape: the editable last primitive and its handle editor
//   - selection: rectangular capture, move and resize
//
// # Concurrency
//
// A Session is not safe for concurrent use. Events must be delivered from a
// single goroutine, and the frame returned by Frame must be copied before it
// is read elsewhere.
package sketch
