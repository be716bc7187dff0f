package sketch

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/sketch/canvas"
	"github.com/gogpu/sketch/raster"
)

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(16, 12)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.Tool() != ToolLine || s.Mode() != ModeIdle {
		t.Errorf("Tool() = %v, Mode() = %v", s.Tool(), s.Mode())
	}
	if s.Color() != canvas.White || s.Thickness() != 1 || s.Style() != raster.Solid {
		t.Errorf("pen = %v %d %v, want white 1 solid", s.Color(), s.Thickness(), s.Style())
	}
	if s.Background() != canvas.Black {
		t.Errorf("Background() = %v, want black", s.Background())
	}
	if s.ID() == "" {
		t.Error("ID() is empty")
	}
	if b := s.Frame().Bounds(); b != image.Rect(0, 0, 16, 12) {
		t.Errorf("Frame().Bounds() = %v", b)
	}
	if frameAt(s, 15, 11) != canvas.Black {
		t.Error("initial frame is not the background")
	}
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := NewSession(0, 10); !errors.Is(err, canvas.ErrInvalidDimensions) {
		t.Errorf("NewSession(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewSession(10, 10, WithTool(Tool(42))); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("NewSession with Tool(42) error = %v, want ErrUnknownTool", err)
	}
}

func TestNewSessionOptions(t *testing.T) {
	s, err := NewSession(10, 10,
		WithBackground(color.NRGBA{R: 255}),
		WithColor(color.NRGBA{B: 255}),
		WithThickness(-3),
		WithStyle(raster.Dotted),
		WithTool(ToolFill),
		WithHandleRadius(0),
	)
	if err != nil {
		t.Fatal(err)
	}
	if s.Persistent().Pixel(3, 3) != canvas.Red {
		t.Error("background not applied opaque")
	}
	if s.Color() != canvas.Blue {
		t.Errorf("Color() = %v, want opaque blue", s.Color())
	}
	if s.Thickness() != 1 || s.Style() != raster.Dotted || s.Tool() != ToolFill {
		t.Errorf("pen = %d %v %v", s.Thickness(), s.Style(), s.Tool())
	}
	if s.handleRadius != DefaultHandleRadius {
		t.Errorf("handleRadius = %d, want default", s.handleRadius)
	}
}

func TestWithCloseTolerance(t *testing.T) {
	s, err := NewSession(30, 30, WithTool(ToolPolygon), WithCloseTolerance(2))
	if err != nil {
		t.Fatal(err)
	}
	click(s, 0, 0)
	click(s, 5, 0)
	click(s, 5, 5)
	click(s, 3, 3) // 18 > 4: adds a vertex
	if n := len(s.Polygon()); n != 4 {
		t.Fatalf("len(Polygon()) = %d, want 4", n)
	}
	click(s, 1, 1)
	if n := len(s.Polygon()); n != 0 {
		t.Errorf("len(Polygon()) = %d after closing click, want 0", n)
	}
}

func TestWithRepaint(t *testing.T) {
	n := 0
	s, err := NewSession(10, 10, WithRepaint(func() { n++ }))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("repaint called %d times during NewSession", n)
	}
	s.SetColor(canvas.Red)
	s.PointerDrag(3, 3, false) // idle: nothing to do
	s.PointerMove(4, 4)
	if n != 0 {
		t.Fatalf("repaint called %d times without a state change", n)
	}
	s.PointerDown(1, 1, false)
	s.PointerDrag(5, 5, false)
	s.PointerUp(5, 5, false)
	if n != 3 {
		t.Errorf("repaint called %d times, want 3", n)
	}
}
