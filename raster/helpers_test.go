// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"crypto/sha256"
	"image"
	"image/color"
	"testing"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// strictSurface is a Surface that records, rather than ignores, writes
// outside its bounds.
type strictSurface struct {
	w, h int
	pix  []color.NRGBA
	oob  int
}

func newSurface(w, h int, bg color.NRGBA) *strictSurface {
	s := &strictSurface{w: w, h: h, pix: make([]color.NRGBA, w*h)}
	for i := range s.pix {
		s.pix[i] = bg
	}
	return s
}

func (s *strictSurface) Width() int  { return s.w }
func (s *strictSurface) Height() int { return s.h }

func (s *strictSurface) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		s.oob++
		return
	}
	s.pix[y*s.w+x] = c
}

func (s *strictSurface) Pixel(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return color.NRGBA{}
	}
	return s.pix[y*s.w+x]
}

// painted returns the set of pixels equal to c.
func (s *strictSurface) painted(c color.NRGBA) map[image.Point]bool {
	set := make(map[image.Point]bool)
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.pix[y*s.w+x] == c {
				set[image.Pt(x, y)] = true
			}
		}
	}
	return set
}

func (s *strictSurface) hash() [32]byte {
	buf := make([]byte, 0, len(s.pix)*4)
	for _, c := range s.pix {
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return sha256.Sum256(buf)
}

func (s *strictSurface) clone() *strictSurface {
	c := &strictSurface{w: s.w, h: s.h, pix: make([]color.NRGBA, len(s.pix))}
	copy(c.pix, s.pix)
	return c
}

func assertNoOOB(t *testing.T, s *strictSurface) {
	t.Helper()
	if s.oob != 0 {
		t.Errorf("%d writes outside the %dx%d surface", s.oob, s.w, s.h)
	}
}
