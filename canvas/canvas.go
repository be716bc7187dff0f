// Package canvas owns the pixel buffers of a drawing session.
//
// A Canvas holds two same-size buffers: the persistent buffer with the ink
// committed so far (always opaque), and a transparent overlay used for live
// previews, marquees and handles. Composite flattens both into the frame that
// is handed to the presentation layer.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Common errors for canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrInvalidHex is returned when a hex color string cannot be parsed.
	ErrInvalidHex = errors.New("canvas: invalid hex color")
)

// Canvas is the single owner of the persistent and overlay buffers.
//
// Thread safety: Canvas is not safe for concurrent access. A renderer running
// on another goroutine must copy the frame returned by Composite.
type Canvas struct {
	persistent *Pixmap
	overlay    *Pixmap
	frame      *image.RGBA
	background color.NRGBA
}

// New creates a canvas of the given size. The persistent buffer is filled
// with background (forced opaque) and the overlay is fully transparent.
func New(width, height int, background color.NRGBA) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	c := &Canvas{
		persistent: NewPixmap(width, height),
		overlay:    NewPixmap(width, height),
		frame:      image.NewRGBA(image.Rect(0, 0, width, height)),
		background: Opaque(background),
	}
	c.Reset()
	return c, nil
}

// Background returns the color used for clearing and erasing.
func (c *Canvas) Background() color.NRGBA { return c.background }

// Persistent returns the committed-ink buffer.
func (c *Canvas) Persistent() *Pixmap { return c.persistent }

// Overlay returns the transient preview buffer.
func (c *Canvas) Overlay() *Pixmap { return c.overlay }

// ClearOverlay makes every overlay pixel fully transparent.
func (c *Canvas) ClearOverlay() {
	c.overlay.Clear(Transparent)
}

// Reset clears the persistent buffer to the background and the overlay to
// transparent.
func (c *Canvas) Reset() {
	c.persistent.Clear(c.background)
	c.overlay.Clear(Transparent)
}

// Composite draws the persistent buffer and then the overlay on top of it
// into the frame, and returns the frame. The frame is reused between calls.
func (c *Canvas) Composite() *image.RGBA {
	r := c.frame.Rect
	xdraw.Draw(c.frame, r, c.persistent.Image(), image.Point{}, xdraw.Src)
	xdraw.Draw(c.frame, r, c.overlay.Image(), image.Point{}, xdraw.Over)
	return c.frame
}

// Frame returns the result of the last Composite without recompositing.
func (c *Canvas) Frame() *image.RGBA {
	return c.frame
}
