// Package script replays recorded pointer gestures against a sketch session.
//
// A script is a YAML document describing a canvas and an ordered list of
// steps. Each step performs exactly one action:
//
//	width: 320
//	height: 240
//	background: "#000"
//	steps:
//	  - tool: rectangle
//	  - color: "#ff8800"
//	  - thickness: 3
//	  - style: dashed
//	  - stroke: [[20, 20], [120, 90]]
//	    shift: true
//	  - down: [5, 5]
//	  - drag: [40, 12]
//	  - up: [40, 12]
//	  - move: [60, 60]
//	  - clear: true
//
// A stroke presses at its first point, drags through the middle ones and
// releases at the last. Scripts are validated completely when loaded, so
// Apply never fails halfway through.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/canvas"
	"github.com/gogpu/sketch/raster"
)

// Default canvas size for scripts that do not set one.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

var (
	// ErrUnknownAction is returned for a step that names no action.
	ErrUnknownAction = errors.New("script: step has no action")

	// ErrAmbiguousStep is returned for a step that names several actions.
	ErrAmbiguousStep = errors.New("script: step has more than one action")

	// ErrEmptyStroke is returned for a stroke without points.
	ErrEmptyStroke = errors.New("script: stroke has no points")

	// ErrNilSession is returned by Apply when given no session.
	ErrNilSession = errors.New("script: nil session")
)

// Point is an [x, y] pair.
type Point [2]int

func (p Point) pt() image.Point { return image.Pt(p[0], p[1]) }

// Step is one entry of the steps list as written in YAML.
type Step struct {
	Tool      string  `yaml:"tool,omitempty"`
	Color     string  `yaml:"color,omitempty"`
	Thickness *int    `yaml:"thickness,omitempty"`
	Style     string  `yaml:"style,omitempty"`
	Down      *Point  `yaml:"down,omitempty"`
	Drag      *Point  `yaml:"drag,omitempty"`
	Up        *Point  `yaml:"up,omitempty"`
	Move      *Point  `yaml:"move,omitempty"`
	Stroke    []Point `yaml:"stroke,omitempty"`
	Clear     bool    `yaml:"clear,omitempty"`

	// Shift holds the modifier for down, drag, up and stroke.
	Shift bool `yaml:"shift,omitempty"`
}

type document struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Steps      []Step `yaml:"steps"`
}

type action func(s *sketch.Session)

// Script is a validated, replayable gesture script.
type Script struct {
	Width      int
	Height     int
	Background color.NRGBA

	actions []action
}

// Load decodes and validates a script. Unknown keys are rejected. Errors
// name the offending step.
func Load(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("script: empty document")
		}
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	return compile(&doc)
}

// Parse is Load over an in-memory document.
func Parse(data []byte) (*Script, error) {
	return Load(bytes.NewReader(data))
}

func compile(doc *document) (*Script, error) {
	s := &Script{
		Width:      doc.Width,
		Height:     doc.Height,
		Background: canvas.Black,
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("script: %w: %dx%d", canvas.ErrInvalidDimensions, s.Width, s.Height)
	}
	if doc.Background != "" {
		bg, err := canvas.ParseHex(doc.Background)
		if err != nil {
			return nil, fmt.Errorf("script: background: %w", err)
		}
		s.Background = bg
	}

	s.actions = make([]action, 0, len(doc.Steps))
	for i, step := range doc.Steps {
		a, err := compileStep(step)
		if err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i, err)
		}
		s.actions = append(s.actions, a)
	}
	return s, nil
}

func compileStep(st Step) (action, error) {
	var (
		act   action
		count int
	)
	set := func(a action) {
		act = a
		count++
	}

	if st.Tool != "" {
		tool, err := sketch.ParseTool(st.Tool)
		if err != nil {
			return nil, err
		}
		set(func(s *sketch.Session) { s.SelectTool(tool) })
	}
	if st.Color != "" {
		c, err := canvas.ParseHex(st.Color)
		if err != nil {
			return nil, err
		}
		set(func(s *sketch.Session) { s.SetColor(c) })
	}
	if st.Thickness != nil {
		t := *st.Thickness
		set(func(s *sketch.Session) { s.SetThickness(t) })
	}
	if st.Style != "" {
		style, err := raster.ParseStyle(st.Style)
		if err != nil {
			return nil, err
		}
		set(func(s *sketch.Session) { s.SetStyle(style) })
	}

	shift := st.Shift
	if p := st.Down; p != nil {
		set(func(s *sketch.Session) { s.PointerDown(p[0], p[1], shift) })
	}
	if p := st.Drag; p != nil {
		set(func(s *sketch.Session) { s.PointerDrag(p[0], p[1], shift) })
	}
	if p := st.Up; p != nil {
		set(func(s *sketch.Session) { s.PointerUp(p[0], p[1], shift) })
	}
	if p := st.Move; p != nil {
		set(func(s *sketch.Session) { s.PointerMove(p[0], p[1]) })
	}
	if st.Stroke != nil {
		if len(st.Stroke) == 0 {
			return nil, ErrEmptyStroke
		}
		pts := make([]image.Point, len(st.Stroke))
		for i, p := range st.Stroke {
			pts[i] = p.pt()
		}
		set(func(s *sketch.Session) { stroke(s, pts, shift) })
	}
	if st.Clear {
		set(func(s *sketch.Session) { s.Clear() })
	}

	switch count {
	case 0:
		return nil, ErrUnknownAction
	case 1:
		return act, nil
	default:
		return nil, ErrAmbiguousStep
	}
}

func stroke(s *sketch.Session, pts []image.Point, shift bool) {
	first, last := pts[0], pts[len(pts)-1]
	s.PointerDown(first.X, first.Y, shift)
	for _, p := range pts[1:] {
		s.PointerDrag(p.X, p.Y, shift)
	}
	s.PointerUp(last.X, last.Y, shift)
}

// Len returns the number of steps.
func (sc *Script) Len() int { return len(sc.actions) }

// NewSession creates a session sized and colored as the script asks.
// Options are applied after the script's own.
func (sc *Script) NewSession(opts ...sketch.Option) (*sketch.Session, error) {
	all := append([]sketch.Option{sketch.WithBackground(sc.Background)}, opts...)
	return sketch.NewSession(sc.Width, sc.Height, all...)
}

// Apply replays every step against s in order.
func (sc *Script) Apply(s *sketch.Session) error {
	if s == nil {
		return ErrNilSession
	}
	log := sketch.Logger()
	for i, a := range sc.actions {
		a(s)
		log.Debug("script: step", "index", i, "tool", s.Tool(), "mode", s.Mode())
	}
	return nil
}
