package shape

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/sketch/canvas"
	"github.com/gogpu/sketch/raster"
)

func newPixmap(t *testing.T, w, h int) *canvas.Pixmap {
	t.Helper()
	p := canvas.NewPixmap(w, h)
	p.Clear(canvas.Black)
	return p
}

func countColor(p *canvas.Pixmap, c color.NRGBA) int {
	n := 0
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			if p.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestRecord_HitHandle(t *testing.T) {
	rec := Record{Kind: Line, P1: image.Pt(10, 10), P2: image.Pt(40, 10), Thickness: 1}

	tests := []struct {
		name   string
		p      image.Point
		want   Handle
		wantOK bool
	}{
		{"on p1", image.Pt(10, 10), HandleP1, true},
		{"near p2", image.Pt(46, 18), HandleP2, true},
		{"midpoint", image.Pt(25, 14), HandleMid, true},
		{"just outside p1", image.Pt(10, 21), 0, false},
		{"nowhere", image.Pt(100, 100), 0, false},
		{"squared distance overflows", image.Pt(10+3_037_000_500, 10), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rec.HitHandle(tt.p, 10)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("HitHandle(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRecord_HitHandlePrefersEndpoints(t *testing.T) {
	// Midpoint (2,0) is also within reach of both endpoints.
	rec := Record{Kind: Line, P1: image.Pt(0, 0), P2: image.Pt(4, 0)}
	if h, ok := rec.HitHandle(image.Pt(2, 0), 10); !ok || h != HandleP1 {
		t.Errorf("HitHandle = %v, %v; want p1", h, ok)
	}
}

func TestRecord_Bounds(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want image.Rectangle
	}{
		{
			"line thin",
			Record{Kind: Line, P1: image.Pt(8, 2), P2: image.Pt(3, 6), Thickness: 1},
			image.Rect(3, 2, 9, 7),
		},
		{
			"rectangle thick",
			Record{Kind: Rectangle, P1: image.Pt(2, 2), P2: image.Pt(6, 6), Thickness: 4},
			image.Rect(0, 0, 9, 9),
		},
		{
			"circle",
			Record{Kind: Circle, P1: image.Pt(10, 10), P2: image.Pt(13, 14), Thickness: 3},
			image.Rect(4, 4, 17, 17),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecord_BoundsCoverDrawing(t *testing.T) {
	recs := []Record{
		{Kind: Line, P1: image.Pt(5, 30), P2: image.Pt(40, 12), Color: canvas.White, Thickness: 5},
		{Kind: Rectangle, P1: image.Pt(35, 35), P2: image.Pt(12, 20), Color: canvas.White, Thickness: 3, Style: raster.Dashed},
		{Kind: Circle, P1: image.Pt(25, 25), P2: image.Pt(33, 29), Color: canvas.White, Thickness: 4},
	}
	for _, rec := range recs {
		t.Run(rec.Kind.String(), func(t *testing.T) {
			p := newPixmap(t, 50, 50)
			rec.Draw(p)
			b := rec.Bounds()
			for y := 0; y < 50; y++ {
				for x := 0; x < 50; x++ {
					if p.Pixel(x, y) == canvas.White && !image.Pt(x, y).In(b) {
						t.Fatalf("pixel (%d,%d) drawn outside %v", x, y, b)
					}
				}
			}
		})
	}
}

func TestEditable(t *testing.T) {
	var e Editable
	if e.IsSome() {
		t.Error("zero Editable holds a record")
	}
	if _, ok := None().Get(); ok {
		t.Error("None() holds a record")
	}
	rec := Record{Kind: Circle, P1: image.Pt(1, 2)}
	got, ok := Some(rec).Get()
	if !ok || got != rec {
		t.Errorf("Some(rec).Get() = %v, %v", got, ok)
	}
}

func TestEditor_MoveEndpoint(t *testing.T) {
	p := newPixmap(t, 30, 30)
	rec := Record{Kind: Line, P1: image.Pt(2, 2), P2: image.Pt(20, 2), Color: canvas.White, Thickness: 1}
	rec.Draw(p)

	var ed Editor
	if !ed.Begin(rec, image.Pt(19, 3), 10, p, canvas.Black) {
		t.Fatal("Begin did not grab p2")
	}
	if ed.Handle() != HandleP2 || !ed.Active() {
		t.Fatalf("Handle() = %v, Active() = %v", ed.Handle(), ed.Active())
	}
	if n := countColor(p, canvas.White); n != 0 {
		t.Fatalf("%d pixels of the old shape left in persistent", n)
	}

	ed.DragTo(image.Pt(20, 25))

	overlay := canvas.NewPixmap(30, 30)
	ed.Preview(overlay)
	if overlay.Pixel(20, 25) != canvas.White {
		t.Error("preview missing the moved endpoint")
	}
	if countColor(p, canvas.White) != 0 {
		t.Error("preview wrote into persistent")
	}

	got := ed.Commit(p)
	if got.P1 != image.Pt(2, 2) || got.P2 != image.Pt(20, 25) {
		t.Errorf("Commit() = %v -> %v", got.P1, got.P2)
	}
	if ed.Active() {
		t.Error("editor still active after Commit")
	}
	if p.Pixel(20, 25) != canvas.White || p.Pixel(2, 2) != canvas.White {
		t.Error("committed shape not in persistent")
	}
}

func TestEditor_MoveByMidpoint(t *testing.T) {
	p := newPixmap(t, 60, 60)
	rec := Record{Kind: Rectangle, P1: image.Pt(10, 10), P2: image.Pt(21, 20), Color: canvas.Red, Thickness: 1}
	rec.Draw(p)

	var ed Editor
	// Midpoint is (15,15); grab slightly off it.
	if !ed.Begin(rec, image.Pt(17, 14), 5, p, canvas.Black) || ed.Handle() != HandleMid {
		t.Fatal("Begin did not grab the midpoint")
	}
	ed.DragTo(image.Pt(37, 24))
	ed.DragTo(image.Pt(27, 34))

	got := ed.Commit(p)
	if got.P1 != image.Pt(20, 30) || got.P2 != image.Pt(31, 40) {
		t.Errorf("translated to %v -> %v, want (20,30) -> (31,40)", got.P1, got.P2)
	}
	if p.Pixel(10, 10) == canvas.Red {
		t.Error("old rectangle still in persistent")
	}
	if p.Pixel(20, 30) != canvas.Red || p.Pixel(31, 40) != canvas.Red {
		t.Error("moved rectangle not committed")
	}
}

func TestEditor_MissIsNoop(t *testing.T) {
	p := newPixmap(t, 30, 30)
	rec := Record{Kind: Circle, P1: image.Pt(15, 15), P2: image.Pt(20, 15), Color: canvas.White, Thickness: 1}
	rec.Draw(p)
	before := p.Clone()

	var ed Editor
	if ed.Begin(rec, image.Pt(0, 29), 3, p, canvas.Black) {
		t.Fatal("Begin grabbed a handle far from the shape")
	}
	ed.DragTo(image.Pt(5, 5))
	ed.Preview(p)
	if !p.Equal(before) {
		t.Error("idle editor modified the buffer")
	}
}

func TestDrawHandles(t *testing.T) {
	overlay := canvas.NewPixmap(40, 40)
	rec := Record{Kind: Line, P1: image.Pt(5, 5), P2: image.Pt(25, 5)}
	DrawHandles(overlay, rec, canvas.Cyan)
	for _, h := range rec.Handles() {
		for _, d := range []image.Point{{-2, -2}, {2, 2}, {0, 0}} {
			q := h.Add(d)
			if overlay.Pixel(q.X, q.Y) != canvas.Cyan {
				t.Errorf("handle pixel %v not painted", q)
			}
		}
	}
	if got := countColor(overlay, canvas.Cyan); got != 3*25 {
		t.Errorf("painted %d pixels, want 75", got)
	}
}
