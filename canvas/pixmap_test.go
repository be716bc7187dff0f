package canvas

import (
	"image"
	"image/color"
	"testing"
)

func TestPixmapSetPixel_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestPixmapPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPixel(3, 2, Cyan)

	if got := pm.Pixel(3, 2); got != Cyan {
		t.Errorf("Pixel(3, 2) = %v, want %v", got, Cyan)
	}
	if got := pm.Pixel(0, 0); got != Transparent {
		t.Errorf("Pixel(0, 0) = %v, want transparent", got)
	}
	if got := pm.Pixel(4, 0); got != Transparent {
		t.Errorf("Pixel(4, 0) out of bounds = %v, want transparent", got)
	}
}

func TestPixmapNegativeSize(t *testing.T) {
	pm := NewPixmap(-3, 5)
	if pm.Width() != 0 || pm.Height() != 5 {
		t.Errorf("NewPixmap(-3, 5) size = %dx%d, want 0x5", pm.Width(), pm.Height())
	}
	pm.SetPixel(0, 0, White) // must not panic
}

func TestPixmapFillRect_Clipped(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.Clear(Black)
	pm.FillRect(image.Rect(3, 3, 10, 10), White)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := Black
			if x >= 3 && y >= 3 {
				want = White
			}
			if got := pm.Pixel(x, y); got != want {
				t.Errorf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixmapCrop(t *testing.T) {
	pm := NewPixmap(6, 6)
	pm.Clear(Black)
	pm.SetPixel(2, 3, Red)

	tests := []struct {
		name     string
		r        image.Rectangle
		wantNil  bool
		wantSize image.Point
	}{
		{name: "inside", r: image.Rect(1, 1, 4, 5), wantSize: image.Pt(3, 4)},
		{name: "reversed corners", r: image.Rectangle{Min: image.Pt(4, 5), Max: image.Pt(1, 1)}, wantSize: image.Pt(3, 4)},
		{name: "clipped", r: image.Rect(-5, -5, 2, 2), wantSize: image.Pt(2, 2)},
		{name: "outside", r: image.Rect(10, 10, 20, 20), wantNil: true},
		{name: "empty", r: image.Rect(2, 2, 2, 5), wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pm.Crop(tt.r)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Crop(%v) = %dx%d, want nil", tt.r, got.Width(), got.Height())
				}
				return
			}
			if got == nil {
				t.Fatalf("Crop(%v) = nil", tt.r)
			}
			if got.Width() != tt.wantSize.X || got.Height() != tt.wantSize.Y {
				t.Errorf("Crop(%v) size = %dx%d, want %dx%d", tt.r, got.Width(), got.Height(), tt.wantSize.X, tt.wantSize.Y)
			}
		})
	}

	sub := pm.Crop(image.Rect(1, 1, 4, 5))
	if got := sub.Pixel(1, 2); got != Red {
		t.Errorf("cropped Pixel(1, 2) = %v, want red", got)
	}
}

func TestPixmapBlit(t *testing.T) {
	dst := NewPixmap(5, 5)
	dst.Clear(Black)
	src := NewPixmap(2, 2)
	src.Clear(White)

	dst.Blit(src, image.Pt(4, 4))
	if got := dst.Pixel(4, 4); got != White {
		t.Errorf("Pixel(4, 4) = %v, want white", got)
	}
	if got := dst.Pixel(3, 3); got != Black {
		t.Errorf("Pixel(3, 3) = %v, want black", got)
	}

	// Fully outside must not panic or write.
	before := dst.Clone()
	dst.Blit(src, image.Pt(-10, -10))
	if !dst.Equal(before) {
		t.Error("Blit outside the pixmap modified pixels")
	}

	dst.Blit(nil, image.Pt(0, 0))
}

func TestPixmapCloneIndependent(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Blue)
	c := pm.Clone()
	pm.SetPixel(1, 1, Yellow)

	if c.Pixel(1, 1) != Blue {
		t.Error("Clone shares memory with the original")
	}
	if pm.Equal(c) {
		t.Error("Equal() = true after diverging write")
	}
	c.CopyFrom(pm)
	if !pm.Equal(c) {
		t.Error("Equal() = false after CopyFrom")
	}
}

func TestPixmapImageInterface(t *testing.T) {
	var _ image.Image = (*Pixmap)(nil)

	pm := NewPixmap(2, 2)
	pm.SetPixel(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if got := pm.At(1, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("At(1, 0) = %v", got)
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBAModel")
	}
}
