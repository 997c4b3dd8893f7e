package registry

import (
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/content"
	"github.com/bnema/whiteboard/internal/ui/event"
)

// ResetAll restores every panel's base size and animates it back to its
// cascade slot.
func (r *Registry) ResetAll() {
	for i, p := range r.panels {
		p.Surface.ResetTransform()
		pos := r.cascade(i)
		p.Surface.MoveTo(pos.X, pos.Y, true)
	}
}

// ZoomAll animates every panel to scale times its base size.
func (r *Registry) ZoomAll(scale float64) {
	for _, p := range r.panels {
		p.Surface.ZoomTo(scale, true)
	}
}

// ArrangeInGrid animates panels into a grid at unit scale.
func (r *Registry) ArrangeInGrid() {
	cols := r.cfg.GridColumns
	for i, p := range r.panels {
		x := r.cfg.GridOrigin.X + float64(i%cols)*r.cfg.GridSpacing
		y := r.cfg.GridOrigin.Y + float64(i/cols)*r.cfg.GridSpacing
		p.Surface.MoveTo(x, y, true)
		p.Surface.ZoomTo(1, true)
	}
}

// ToggleDraggingForAll enables dragging on every panel unless it is already
// enabled on all of them, in which case it disables it everywhere. It
// returns the resulting setting.
func (r *Registry) ToggleDraggingForAll() bool {
	all := true
	for _, p := range r.panels {
		all = all && p.Surface.DraggingEnabled()
	}
	for _, p := range r.panels {
		p.Surface.SetDraggingEnabled(!all)
	}
	logging.FromContext(r.ctx).Debug().Bool("enabled", !all).Msg("dragging toggled for all panels")
	return !all
}

// ToggleResizingForAll is ToggleDraggingForAll for pinch resizing.
func (r *Registry) ToggleResizingForAll() bool {
	all := true
	for _, p := range r.panels {
		all = all && p.Surface.ResizingEnabled()
	}
	for _, p := range r.panels {
		p.Surface.SetResizingEnabled(!all)
	}
	logging.FromContext(r.ctx).Debug().Bool("enabled", !all).Msg("resizing toggled for all panels")
	return !all
}

// PauseAllRendering suspends every content that supports it.
func (r *Registry) PauseAllRendering() {
	for _, p := range r.panels {
		if pauser, ok := p.Content.(content.RenderPauser); ok {
			pauser.PauseRendering()
		}
	}
}

// ResumeAllRendering lifts the suspension set by PauseAllRendering.
func (r *Registry) ResumeAllRendering() {
	for _, p := range r.panels {
		if pauser, ok := p.Content.(content.RenderPauser); ok {
			pauser.ResumeRendering()
		}
	}
}

func (r *Registry) onDrawingStateChanged(ev event.Event) {
	if ev.Active {
		r.PauseAllRendering()
	} else {
		r.ResumeAllRendering()
	}
}
