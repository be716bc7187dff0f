package sketch

import "fmt"

// Mode is the gesture a Session is in the middle of.
type Mode int

const (
	// ModeIdle waits for the next pointer-down.
	ModeIdle Mode = iota
	// ModeDrawingPrimitive drags out a line, rectangle or circle.
	ModeDrawingPrimitive
	// ModeEditingLastShape drags a handle of the last primitive.
	ModeEditingLastShape
	// ModePolygonInProgress collects polygon vertices between clicks.
	ModePolygonInProgress
	// ModeSelectingRegion drags out a selection marquee.
	ModeSelectingRegion
	// ModeDraggingSelection moves captured pixels.
	ModeDraggingSelection
	// ModeResizingSelection drags a selection corner handle.
	ModeResizingSelection
	// ModeStrokingFreehand paints with the brush or eraser.
	ModeStrokingFreehand

	modeCount
)

var modeNames = [modeCount]string{
	ModeIdle:              "idle",
	ModeDrawingPrimitive:  "drawing-primitive",
	ModeEditingLastShape:  "editing-last-shape",
	ModePolygonInProgress: "polygon-in-progress",
	ModeSelectingRegion:   "selecting-region",
	ModeDraggingSelection: "dragging-selection",
	ModeResizingSelection: "resizing-selection",
	ModeStrokingFreehand:  "stroking-freehand",
}

func (m Mode) String() string {
	if m >= 0 && m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
