package sketch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTool is returned for a tool name or value that is not defined.
var ErrUnknownTool = errors.New("sketch: unknown tool")

// Tool selects how pointer gestures are interpreted. Exactly one tool is
// active in a Session.
type Tool int

const (
	ToolLine Tool = iota
	ToolRectangle
	ToolCircle
	ToolPolygon
	ToolFill
	ToolSelection
	ToolBrush
	ToolEraser

	toolCount
)

var toolNames = [toolCount]string{
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolCircle:    "circle",
	ToolPolygon:   "polygon",
	ToolFill:      "fill",
	ToolSelection: "selection",
	ToolBrush:     "brush",
	ToolEraser:    "eraser",
}

var toolAliases = map[string]Tool{
	"rect":   ToolRectangle,
	"select": ToolSelection,
	"pen":    ToolBrush,
}

func (t Tool) String() string {
	if t.valid() {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

func (t Tool) valid() bool {
	return t >= 0 && t < toolCount
}

// editable reports whether primitives drawn with t can be edited afterwards.
func (t Tool) editable() bool {
	return t == ToolLine || t == ToolRectangle || t == ToolCircle
}

// ParseTool converts a case-insensitive tool name into a Tool.
func ParseTool(name string) (Tool, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == key {
			return Tool(i), nil
		}
	}
	if t, ok := toolAliases[key]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}
