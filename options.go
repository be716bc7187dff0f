package sketch

import (
	"image/color"

	"github.com/gogpu/sketch/canvas"
	"github.com/gogpu/sketch/raster"
)

// Defaults applied by NewSession.
const (
	DefaultHandleRadius   = 10
	DefaultCloseTolerance = 10
)

// Option configures a Session during creation.
//
// Example:
//
//	s, err := sketch.NewSession(800, 600,
//	    sketch.WithBackground(canvas.White),
//	    sketch.WithColor(canvas.Black),
//	    sketch.WithTool(sketch.ToolBrush),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	background     color.NRGBA
	handleRadius   int
	closeTolerance int
	repaint        func()

	color     color.NRGBA
	thickness int
	style     raster.Style
	tool      Tool
}

// defaultOptions returns the default session options: a black canvas and a
// white, 1px solid line pen.
func defaultOptions() options {
	return options{
		background:     canvas.Black,
		handleRadius:   DefaultHandleRadius,
		closeTolerance: DefaultCloseTolerance,
		color:          canvas.White,
		thickness:      1,
		style:          raster.Solid,
		tool:           ToolLine,
	}
}

// WithBackground sets the canvas background. It fills the persistent buffer
// on creation and on Clear, and is the eraser's ink. Alpha is forced to 255.
func WithBackground(c color.NRGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithHandleRadius sets how close, in pixels, a pointer-down must land to a
// shape or selection handle to grab it.
func WithHandleRadius(r int) Option {
	return func(o *options) {
		if r > 0 {
			o.handleRadius = r
		}
	}
}

// WithCloseTolerance sets how close, in pixels, a click must land to the
// first polygon vertex to close the polygon.
func WithCloseTolerance(r int) Option {
	return func(o *options) {
		if r >= 0 {
			o.closeTolerance = r
		}
	}
}

// WithRepaint registers a callback invoked after every input-driven redraw.
// The presentation layer typically schedules a repaint of Frame from it.
func WithRepaint(fn func()) Option {
	return func(o *options) {
		o.repaint = fn
	}
}

// WithColor sets the initial pen color.
func WithColor(c color.NRGBA) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithThickness sets the initial pen thickness. Values below 1 become 1.
func WithThickness(t int) Option {
	return func(o *options) {
		o.thickness = max(t, 1)
	}
}

// WithStyle sets the initial stroke style.
func WithStyle(s raster.Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithTool sets the initially active tool.
func WithTool(t Tool) Option {
	return func(o *options) {
		o.tool = t
	}
}
