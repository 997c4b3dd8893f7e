package annotation

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// ArrowHead sizes the two barbs drawn at the end of an arrow.
type ArrowHead struct {
	Length float64
	// Angle between the shaft and each barb, in radians.
	Angle float64
}

// DefaultArrowHead returns 30px barbs at 30 degrees.
func DefaultArrowHead() ArrowHead {
	return ArrowHead{Length: 30, Angle: math.Pi / 6}
}

// buildShape derives the preview shape for tool from the gesture start and
// the current point. FreeDraw is handled incrementally by the engine.
func buildShape(tool entity.Tool, start, current entity.Point, head ArrowHead) (entity.Shape, bool) {
	switch tool {
	case entity.ToolLine:
		return entity.Shape{Kind: entity.ShapeSegment, Start: start, End: current}, true
	case entity.ToolRectangle:
		return entity.Shape{Kind: entity.ShapeRect, Bounds: entity.NormalizedRect(start, current)}, true
	case entity.ToolCircle:
		return entity.Shape{Kind: entity.ShapeCircle, Center: start, Radius: start.Distance(current)}, true
	case entity.ToolArrow:
		return arrowShape(start, current, head), true
	default:
		return entity.Shape{}, false
	}
}

// arrowShape builds a shaft from start to end with two barbs at end:
// barb = end - L*(cos(theta -/+ a), sin(theta -/+ a)).
func arrowShape(start, end entity.Point, head ArrowHead) entity.Shape {
	shaft := r2.Sub(end.Vec(), start.Vec())
	theta := math.Atan2(shaft.Y, shaft.X)
	barb := func(angle float64) entity.Point {
		dir := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		return entity.PointFromVec(r2.Sub(end.Vec(), r2.Scale(head.Length, dir)))
	}
	return entity.Shape{
		Kind:  entity.ShapeArrow,
		Start: start,
		End:   end,
		Barbs: [2]entity.Point{barb(theta - head.Angle), barb(theta + head.Angle)},
	}
}
