// Package input routes raw touch gestures to exactly one consumer: the
// annotation engine when annotation mode is on, otherwise the topmost
// panel under the first pointer.
package input

import (
	"context"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/event"
	"github.com/bnema/whiteboard/internal/ui/registry"
)

// Annotator is the annotation side of the router.
type Annotator interface {
	Mode() bool
	Handle(ev entity.TouchEvent) bool
}

// PanelFinder locates the panel under a point.
type PanelFinder interface {
	PanelAt(p entity.Point) (*registry.Panel, bool)
}

type touchTarget interface {
	Handle(ev entity.TouchEvent) bool
}

// Router picks a target when a gesture starts and sends every later event
// of that gesture to the same target.
type Router struct {
	ctx       context.Context
	annotator Annotator
	panels    PanelFinder

	target  touchTarget
	panelID entity.PanelID
	unsub   func()
}

// NewRouter creates a router. When bus is non-nil the router cancels an
// in-flight panel gesture as soon as annotation mode turns on.
func NewRouter(ctx context.Context, annotator Annotator, panels PanelFinder, bus *event.Bus) *Router {
	r := &Router{
		ctx:       logging.WithComponent(ctx, "input"),
		annotator: annotator,
		panels:    panels,
	}
	if bus != nil {
		r.unsub = bus.Subscribe(event.AnnotationModeChanged, r.onModeChanged)
	}
	return r
}

// Close detaches the router from the bus.
func (r *Router) Close() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

// ActivePanel returns the panel receiving the current gesture, if any.
func (r *Router) ActivePanel() (entity.PanelID, bool) {
	return r.panelID, r.panelID != ""
}

// Dispatch delivers ev and reports whether it was consumed.
func (r *Router) Dispatch(ev entity.TouchEvent) bool {
	if ev.Action == entity.TouchDown {
		r.pick(ev)
	}
	if r.target == nil {
		return false
	}

	consumed := r.target.Handle(ev)
	if ev.Action == entity.TouchUp || ev.Action == entity.TouchCancel {
		r.release()
	}
	return consumed
}

func (r *Router) pick(ev entity.TouchEvent) {
	r.release()
	if r.annotator != nil && r.annotator.Mode() {
		r.target = r.annotator
		return
	}
	p, ok := ev.Primary()
	if !ok || r.panels == nil {
		return
	}
	if panel, hit := r.panels.PanelAt(p.Point); hit {
		r.target = panel.Surface
		r.panelID = panel.ID
		logging.FromContext(r.ctx).Trace().Str("panel_id", panel.ID.Short()).Msg("gesture routed to panel")
	}
}

func (r *Router) release() {
	r.target = nil
	r.panelID = ""
}

func (r *Router) onModeChanged(ev event.Event) {
	if !ev.Active || r.panelID == "" {
		if !ev.Active && r.target == r.annotator {
			r.release()
		}
		return
	}
	logging.FromContext(r.ctx).Debug().Str("panel_id", r.panelID.Short()).Msg("annotation mode on, cancelling panel gesture")
	r.target.Handle(entity.TouchEvent{Action: entity.TouchCancel})
	r.release()
}
