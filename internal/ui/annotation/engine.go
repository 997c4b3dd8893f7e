// Package annotation turns touches into freehand and geometric strokes
// drawn over the whole canvas, with undo and clear.
package annotation

import (
	"context"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/event"
)

// Options configures an Engine.
type Options struct {
	Bus   *event.Bus
	Paint entity.Paint
	Arrow ArrowHead
	// Tool is the initially selected tool. Defaults to FreeDraw.
	Tool entity.Tool
}

// DefaultPaint is a 5px red round-capped stroke.
func DefaultPaint() entity.Paint {
	return entity.Paint{Color: "#FF0000", Width: 5, Style: entity.PaintStroke, Cap: entity.CapRound}
}

// Engine holds the annotation history, the active tool and the shape being
// drawn. History only changes by append, pop-last and clear.
type Engine struct {
	ctx   context.Context
	bus   *event.Bus
	paint entity.Paint
	arrow ArrowHead
	tool  entity.Tool

	mode          bool
	drawing       bool
	activePointer int
	start         entity.Point
	scratch       *entity.Shape
	history       []entity.Stroke
}

// New creates an engine with annotation mode off.
func New(ctx context.Context, opts Options) *Engine {
	if opts.Paint.Width <= 0 {
		opts.Paint = DefaultPaint()
	}
	if opts.Arrow.Length <= 0 {
		opts.Arrow = DefaultArrowHead()
	}
	return &Engine{
		ctx:           logging.WithComponent(ctx, "annotation"),
		bus:           opts.Bus,
		paint:         opts.Paint,
		arrow:         opts.Arrow,
		tool:          opts.Tool,
		activePointer: -1,
	}
}

// Tool returns the active tool.
func (e *Engine) Tool() entity.Tool { return e.tool }

// Paint returns the paint applied to new strokes.
func (e *Engine) Paint() entity.Paint { return e.paint }

// SetPaint changes the paint for strokes committed from now on.
func (e *Engine) SetPaint(p entity.Paint) { e.paint = p }

// Drawing reports whether a gesture is in progress.
func (e *Engine) Drawing() bool { return e.drawing }

// SelectTool switches the active tool.
func (e *Engine) SelectTool(tool entity.Tool) {
	e.tool = tool
	logging.FromContext(e.ctx).Debug().Str("tool", tool.String()).Msg("tool selected")
	e.bus.Emit(event.Event{Type: event.ToolSelected, Tool: tool})
}

// Undo removes the most recent stroke. It is a no-op on empty history but
// still notifies listeners.
func (e *Engine) Undo() {
	if n := len(e.history); n > 0 {
		e.history = e.history[:n-1]
	}
	e.bus.Emit(event.Event{Type: event.Undo})
}

// Clear empties the history and discards the in-progress shape.
func (e *Engine) Clear() {
	e.history = nil
	e.scratch = nil
	e.bus.Emit(event.Event{Type: event.Clear})
}

// Strokes returns the committed strokes, oldest first. They are returned
// whether or not annotation mode is on.
func (e *Engine) Strokes() []entity.Stroke {
	out := make([]entity.Stroke, len(e.history))
	copy(out, e.history)
	return out
}

// Len returns the number of committed strokes.
func (e *Engine) Len() int { return len(e.history) }

// Scratch returns the shape being drawn, if any.
func (e *Engine) Scratch() (entity.Shape, bool) {
	if !e.drawing || !e.mode || e.scratch == nil {
		return entity.Shape{}, false
	}
	return e.scratch.Clone(), true
}

// Handle processes a touch event in canvas coordinates. Only the first
// pointer of a gesture draws. Events are ignored while annotation mode is
// off.
func (e *Engine) Handle(ev entity.TouchEvent) (consumed bool) {
	if !e.mode {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			logging.LogPanic(e.ctx, "annotation.Handle", r)
			e.abort()
			consumed = false
		}
	}()

	switch ev.Action {
	case entity.TouchDown:
		p, ok := ev.Primary()
		if !ok {
			return false
		}
		e.begin(p)
	case entity.TouchMove:
		if !e.drawing {
			return true
		}
		if p, ok := ev.Find(e.activePointer); ok {
			e.extend(p.Point)
		}
	case entity.TouchUp:
		e.commit()
	case entity.TouchCancel:
		e.abort()
	}
	return true
}

func (e *Engine) begin(p entity.Pointer) {
	e.drawing = true
	e.activePointer = p.ID
	e.start = p.Point
	e.scratch = nil
	if e.tool == entity.ToolFreeDraw {
		e.scratch = &entity.Shape{Kind: entity.ShapePolyline, Points: []entity.Point{p.Point}}
	}
	e.bus.Emit(event.Event{Type: event.DrawingStateChanged, Active: true})
}

func (e *Engine) extend(p entity.Point) {
	if !p.IsFinite() {
		return
	}
	if e.tool == entity.ToolFreeDraw {
		if e.scratch != nil {
			e.scratch.Points = append(e.scratch.Points, p)
		}
		return
	}
	shape, ok := buildShape(e.tool, e.start, p, e.arrow)
	if !ok {
		e.scratch = nil
		return
	}
	e.scratch = &shape
}

// commit appends the scratch shape as an immutable stroke. The UP point
// itself is not added; the last MOVE defines the shape.
func (e *Engine) commit() {
	if !e.drawing {
		return
	}
	if e.scratch != nil && e.tool != entity.ToolSelection {
		e.history = append(e.history, entity.Stroke{Tool: e.tool, Shape: e.scratch.Clone(), Paint: e.paint})
		logging.FromContext(e.ctx).Debug().
			Str("tool", e.tool.String()).
			Int("strokes", len(e.history)).
			Msg("stroke committed")
	}
	e.end()
}

func (e *Engine) abort() {
	if !e.drawing {
		return
	}
	e.end()
}

func (e *Engine) end() {
	e.drawing = false
	e.activePointer = -1
	e.scratch = nil
	e.bus.Emit(event.Event{Type: event.DrawingStateChanged, Active: false})
}
