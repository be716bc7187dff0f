// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned by ParseStyle for an unrecognized name.
var ErrUnknownStyle = errors.New("raster: unknown stroke style")

// Style selects the on/off pattern applied along a rasterized path.
type Style int

const (
	// Solid paints every step.
	Solid Style = iota
	// Dashed paints runs of 3*thickness steps separated by equal gaps.
	Dashed
	// Dotted paints runs of thickness steps separated by 2*thickness gaps.
	Dotted
)

const (
	dashScale   = 3
	dotGapScale = 2
)

func (s Style) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle converts a case-insensitive style name into a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "solid", "":
		return Solid, nil
	case "dashed", "dash":
		return Dashed, nil
	case "dotted", "dot":
		return Dotted, nil
	}
	return Solid, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// paints reports whether the step-th point along a line should be drawn.
func (s Style) paints(step, thickness int) bool {
	switch s {
	case Dashed:
		dash := thickness * dashScale
		return step%(dash+dash) < dash
	case Dotted:
		gap := thickness * dotGapScale
		return step%(thickness+gap) < thickness
	default:
		return true
	}
}

// period returns the length in steps after which the line pattern repeats.
func (s Style) period(thickness int) int {
	switch s {
	case Dashed:
		return 2 * thickness * dashScale
	case Dotted:
		return thickness * (1 + dotGapScale)
	default:
		return 1
	}
}

var (
	circleSolid  = []bool{true}
	circleDotted = []bool{true, false, false, false}
	circleDashed = []bool{true, true, true, true, false, false, false, false}
)

// circlePattern returns the per-iteration gate used by Circle.
func (s Style) circlePattern() []bool {
	switch s {
	case Dashed:
		return circleDashed
	case Dotted:
		return circleDotted
	default:
		return circleSolid
	}
}
