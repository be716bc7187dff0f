package canvas

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
//
// Every accessor is bounds-checked: writes outside [0,width)×[0,height) are
// discarded and reads return Transparent. Pixmap is not safe for concurrent
// use.
type Pixmap struct {
	img *image.NRGBA
}

// NewPixmap creates a new fully transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// In reports whether (x, y) addresses a pixel of the pixmap.
func (p *Pixmap) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.img.Rect.Max.X && y < p.img.Rect.Max.Y
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if !p.In(x, y) {
		return
	}
	i := p.img.PixOffset(x, y)
	s := p.img.Pix[i : i+4 : i+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = c.A
}

// Pixel returns the color of a single pixel.
func (p *Pixmap) Pixel(x, y int) color.NRGBA {
	if !p.In(x, y) {
		return Transparent
	}
	i := p.img.PixOffset(x, y)
	s := p.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// FillRect fills r, clipped to the pixmap, with a color.
func (p *Pixmap) FillRect(r image.Rectangle, c color.NRGBA) {
	xdraw.Draw(p.img, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	dst := NewPixmap(p.Width(), p.Height())
	copy(dst.img.Pix, p.img.Pix)
	return dst
}

// CopyFrom overwrites p with the contents of src. Pixmaps of different sizes
// are copied over their common top-left area.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src.Width() == p.Width() && src.Height() == p.Height() {
		copy(p.img.Pix, src.img.Pix)
		return
	}
	p.Blit(src, image.Point{})
}

// Crop returns a copy of the pixels inside r. The rectangle is clipped to the
// pixmap first; nil is returned when nothing remains.
func (p *Pixmap) Crop(r image.Rectangle) *Pixmap {
	r = r.Canon().Intersect(p.img.Rect)
	if r.Empty() {
		return nil
	}
	dst := NewPixmap(r.Dx(), r.Dy())
	xdraw.Copy(dst.img, image.Point{}, p.img, r, xdraw.Src, nil)
	return dst
}

// Blit copies src onto p with src's top-left corner at at. Pixels that land
// outside p are discarded.
func (p *Pixmap) Blit(src *Pixmap, at image.Point) {
	if src == nil {
		return
	}
	xdraw.Copy(p.img, at, src.img, src.img.Rect, xdraw.Src, nil)
}

// Equal reports whether both pixmaps have the same size and pixels.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if other == nil || p.img.Rect != other.img.Rect {
		return false
	}
	a, b := p.img.Pix, other.img.Pix
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Data returns the raw pixel data (non-premultiplied RGBA, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// Image returns the backing image. It shares memory with the pixmap.
func (p *Pixmap) Image() *image.NRGBA {
	return p.img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
