package ui

import (
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/ui/gesture"
)

// PanelView is the drawable state of one panel.
type PanelView struct {
	ID      entity.PanelID
	Kind    entity.PanelKind
	Bounds  entity.Rect
	Scale   float64
	State   gesture.State
	Drag    bool
	Resize  bool
	Buttons []ButtonView
}

// ButtonView is a control button in canvas coordinates.
type ButtonView struct {
	Icon   string
	Bounds entity.Rect
}

// Frame is an immutable copy of everything a host draws.
type Frame struct {
	Canvas   entity.Size
	Panels   []PanelView
	Strokes  []entity.Stroke
	Scratch  *entity.Shape
	Mode     bool
	Tool     entity.Tool
	Drawing  bool
	Capacity int
	Status   string
}

// Frame captures the current board. Panels are listed bottom to top.
func (a *App) Frame() Frame {
	f := Frame{
		Canvas:   RegistryConfig(a.deps.Config).Canvas,
		Strokes:  a.annotation.Strokes(),
		Mode:     a.annotation.Mode(),
		Tool:     a.annotation.Tool(),
		Drawing:  a.annotation.Drawing(),
		Capacity: a.registry.Capacity(),
		Status:   a.Describe(),
	}
	if shape, ok := a.annotation.Scratch(); ok {
		f.Scratch = &shape
	}

	for _, p := range a.registry.Panels() {
		bounds := p.Surface.Bounds()
		view := PanelView{
			ID:     p.ID,
			Kind:   p.Kind,
			Bounds: bounds,
			Scale:  p.Surface.Scale(),
			State:  p.Surface.State(),
			Drag:   p.Surface.DraggingEnabled(),
			Resize: p.Surface.ResizingEnabled(),
		}
		for _, pl := range p.Surface.Layer().Placements() {
			view.Buttons = append(view.Buttons, ButtonView{
				Icon:   pl.Button.Icon,
				Bounds: pl.Footprint.Offset(bounds.Left, bounds.Top),
			})
		}
		f.Panels = append(f.Panels, view)
	}
	return f
}
