package entity

import (
	"fmt"
	"strings"
)

// Tool selects how the annotation engine turns touches into shapes.
type Tool int

const (
	ToolFreeDraw Tool = iota
	ToolLine
	ToolRectangle
	ToolCircle
	ToolArrow
	ToolSelection
)

var toolNames = [...]string{"free_draw", "line", "rectangle", "circle", "arrow", "selection"}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return "unknown"
	}
	return toolNames[t]
}

// AllTools lists the tools in palette order.
func AllTools() []Tool {
	return []Tool{ToolFreeDraw, ToolLine, ToolRectangle, ToolCircle, ToolArrow, ToolSelection}
}

// ParseTool accepts the String form, case-insensitively.
func ParseTool(s string) (Tool, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i, name := range toolNames {
		if name == norm || strings.ReplaceAll(name, "_", "") == norm {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// PaintStyle controls whether shapes are outlined or filled.
type PaintStyle int

const (
	PaintStroke PaintStyle = iota
	PaintFill
)

// Cap is the line end style.
type Cap int

const (
	CapRound Cap = iota
	CapButt
	CapSquare
)

// Paint describes how a stroke is rendered.
type Paint struct {
	Color string     `json:"color"`
	Width float64    `json:"width"`
	Style PaintStyle `json:"style"`
	Cap   Cap        `json:"cap"`
}

// ShapeKind is the geometry carried by a Stroke.
type ShapeKind int

const (
	ShapePolyline ShapeKind = iota
	ShapeSegment
	ShapeRect
	ShapeCircle
	ShapeArrow
)

// Shape is the geometry of an annotation. Only the fields relevant to Kind
// are populated:
//   - Polyline: Points
//   - Segment: Start, End
//   - Rect: Bounds
//   - Circle: Center, Radius
//   - Arrow: Start, End (shaft), Barbs
type Shape struct {
	Kind   ShapeKind
	Points []Point
	Start  Point
	End    Point
	Bounds Rect
	Center Point
	Radius float64
	Barbs  [2]Point
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := s
	if s.Points != nil {
		out.Points = append([]Point(nil), s.Points...)
	}
	return out
}

// Stroke is a committed, immutable annotation.
type Stroke struct {
	Tool  Tool
	Shape Shape
	Paint Paint
}
