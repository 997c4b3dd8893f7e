// Package registry owns the panels on a canvas: creation under a capacity
// limit, removal, bulk layout operations, snapshot and restore, and routing
// of the drawing state to content that can pause rendering.
package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/content"
	"github.com/bnema/whiteboard/internal/ui/event"
	"github.com/bnema/whiteboard/internal/ui/exclusion"
	"github.com/bnema/whiteboard/internal/ui/gesture"
)

var (
	// ErrCapacityExceeded is returned when adding a panel to a full canvas.
	ErrCapacityExceeded = errors.New("panel capacity exceeded")
	// ErrInvalidPanelKind is returned for kinds outside the known set.
	ErrInvalidPanelKind = errors.New("invalid panel kind")
	// ErrPanelNotFound is returned when an id does not name a live panel.
	ErrPanelNotFound = errors.New("panel not found")
)

// CloseIcon is the icon of the button every panel gets for removing itself.
const CloseIcon = "close"

// Config holds registry limits and layout parameters.
type Config struct {
	MaxPanels int
	// Panel i is cascaded to (i*CascadeStep, i*CascadeStep + CascadeOffsetY).
	CascadeStep    float64
	CascadeOffsetY float64
	GridColumns    int
	GridSpacing    float64
	GridOrigin     entity.Point
	// Canvas bounds panel translation. Zero means unbounded.
	Canvas   entity.Size
	Display  entity.Size
	Gesture  gesture.Config
	Controls exclusion.Metrics
}

// DefaultConfig returns the stock limits: 8 panels, 50px cascade, 2-column
// grid with 320px spacing from (50,100).
func DefaultConfig() Config {
	return Config{
		MaxPanels:      8,
		CascadeStep:    50,
		CascadeOffsetY: 100,
		GridColumns:    2,
		GridSpacing:    320,
		GridOrigin:     entity.Pt(50, 100),
		Gesture:        gesture.DefaultConfig(),
		Controls:       exclusion.DefaultMetrics(),
	}
}

// Panel is a live panel: its content and its gesture surface.
type Panel struct {
	ID        entity.PanelID
	Kind      entity.PanelKind
	Content   content.Content
	Surface   *gesture.Surface
	CreatedAt time.Time
}

// Registry is the ordered collection of panels. The last panel is drawn on
// top. It is not safe for concurrent use.
type Registry struct {
	ctx     context.Context
	cfg     Config
	bus     *event.Bus
	factory content.Factory
	panels  []*Panel
	unsub   func()
}

// New creates an empty registry and subscribes it to drawing state changes.
func New(ctx context.Context, bus *event.Bus, factory content.Factory, cfg Config) *Registry {
	if cfg.MaxPanels <= 0 {
		cfg.MaxPanels = DefaultConfig().MaxPanels
	}
	if cfg.GridColumns <= 0 {
		cfg.GridColumns = DefaultConfig().GridColumns
	}
	r := &Registry{
		ctx:     logging.WithComponent(ctx, "registry"),
		cfg:     cfg,
		bus:     bus,
		factory: factory,
	}
	if bus != nil {
		r.unsub = bus.Subscribe(event.DrawingStateChanged, r.onDrawingStateChanged)
	}
	return r
}

// Close detaches the registry from the bus.
func (r *Registry) Close() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

// Capacity returns the maximum number of panels.
func (r *Registry) Capacity() int { return r.cfg.MaxPanels }

// Count returns the number of panels.
func (r *Registry) Count() int { return len(r.panels) }

// Panels returns the panels in display order.
func (r *Registry) Panels() []*Panel {
	out := make([]*Panel, len(r.panels))
	copy(out, r.panels)
	return out
}

// PanelsByKind returns the panels of one kind in display order.
func (r *Registry) PanelsByKind(kind entity.PanelKind) []*Panel {
	var out []*Panel
	for _, p := range r.panels {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Get looks a panel up by id.
func (r *Registry) Get(id entity.PanelID) (*Panel, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.panels[i], true
}

// PanelAt returns the topmost panel containing p.
func (r *Registry) PanelAt(p entity.Point) (*Panel, bool) {
	for i := len(r.panels) - 1; i >= 0; i-- {
		if r.panels[i].Surface.Bounds().Contains(p) {
			return r.panels[i], true
		}
	}
	return nil, false
}

// BringToFront moves a panel to the top of the display order.
func (r *Registry) BringToFront(id entity.PanelID) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("bring %s to front: %w", id, ErrPanelNotFound)
	}
	p := r.panels[i]
	r.panels = append(r.panels[:i], r.panels[i+1:]...)
	r.panels = append(r.panels, p)
	return nil
}

// Add creates a panel of the given kind at the next cascade slot.
func (r *Registry) Add(ctx context.Context, kind entity.PanelKind) (*Panel, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPanelKind, kind)
	}
	if err := r.checkCapacity(ctx); err != nil {
		return nil, err
	}
	c, err := r.factory.New(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPanelKind, err)
	}
	return r.insert(ctx, c, r.cascade(len(r.panels))), nil
}

// AddContent adds a panel around existing content at the next cascade slot.
func (r *Registry) AddContent(ctx context.Context, c content.Content) (*Panel, error) {
	if !c.Kind().Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPanelKind, c.Kind())
	}
	if err := r.checkCapacity(ctx); err != nil {
		return nil, err
	}
	return r.insert(ctx, c, r.cascade(len(r.panels))), nil
}

// checkCapacity emits exactly one CapacityExceeded event per rejected add.
func (r *Registry) checkCapacity(ctx context.Context) error {
	if len(r.panels) < r.cfg.MaxPanels {
		return nil
	}
	logging.FromContext(ctx).Warn().Int("max", r.cfg.MaxPanels).Msg("panel limit reached")
	r.bus.Emit(event.Event{Type: event.CapacityExceeded, Count: r.cfg.MaxPanels})
	return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, r.cfg.MaxPanels)
}

func (r *Registry) cascade(i int) entity.Point {
	step := float64(i) * r.cfg.CascadeStep
	return entity.Pt(step, step+r.cfg.CascadeOffsetY)
}

func (r *Registry) insert(ctx context.Context, c content.Content, pos entity.Point) *Panel {
	id := entity.NewPanelID()
	layer := exclusion.New(r.cfg.Controls)
	surface := gesture.New(ctx, gesture.Options{
		ID:       id,
		Bus:      r.bus,
		Config:   r.cfg.Gesture,
		Size:     c.DefaultSize(),
		Display:  r.cfg.Display,
		Parent:   r.cfg.Canvas,
		Position: pos,
		Layer:    layer,
	})
	layer.Add(entity.ControlButton{
		Icon:   CloseIcon,
		Anchor: entity.AnchorTopEnd,
		Action: func() {
			if err := r.Remove(r.ctx, id); err != nil {
				logging.FromContext(r.ctx).Warn().Err(err).Msg("close button on a removed panel")
			}
		},
	})
	for _, b := range c.Buttons() {
		layer.Add(b)
	}

	p := &Panel{ID: id, Kind: c.Kind(), Content: c, Surface: surface, CreatedAt: time.Now()}
	r.panels = append(r.panels, p)

	logging.FromContext(ctx).Debug().
		Str("panel_id", id.Short()).
		Str("kind", string(p.Kind)).
		Int("count", len(r.panels)).
		Msg("panel added")
	r.bus.Emit(event.Event{Type: event.PanelAdded, PanelID: id, Kind: p.Kind})
	r.bus.Emit(event.Event{Type: event.PanelCountChanged, Count: len(r.panels)})
	return p
}

// Remove deletes a panel. Content that renders is paused first.
func (r *Registry) Remove(ctx context.Context, id entity.PanelID) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrPanelNotFound)
	}
	p := r.panels[i]
	if pauser, ok := p.Content.(content.RenderPauser); ok {
		pauser.PauseRendering()
	}
	r.panels = append(r.panels[:i], r.panels[i+1:]...)

	logging.FromContext(ctx).Debug().Str("panel_id", id.Short()).Int("count", len(r.panels)).Msg("panel removed")
	r.bus.Emit(event.Event{Type: event.PanelRemoved, PanelID: id, Kind: p.Kind})
	r.bus.Emit(event.Event{Type: event.PanelCountChanged, Count: len(r.panels)})
	return nil
}

// Clear removes every panel.
func (r *Registry) Clear(ctx context.Context) {
	for len(r.panels) > 0 {
		_ = r.Remove(ctx, r.panels[len(r.panels)-1].ID)
	}
}

// SetCanvasSize changes the bounds panel translation is clamped to.
func (r *Registry) SetCanvasSize(size entity.Size) {
	r.cfg.Canvas = size
	for _, p := range r.panels {
		p.Surface.SetParentBounds(size)
	}
}

// Tick advances every panel's transitions. It reports whether any panel is
// still animating.
func (r *Registry) Tick(now time.Time) bool {
	animating := false
	for _, p := range r.panels {
		if p.Surface.Advance(now) {
			animating = true
		}
	}
	return animating
}

// Stats summarizes the canvas.
type Stats struct {
	Total    int
	Capacity int
	ByKind   map[entity.PanelKind]int
}

// Stats returns panel counts.
func (r *Registry) Stats() Stats {
	s := Stats{Total: len(r.panels), Capacity: r.cfg.MaxPanels, ByKind: make(map[entity.PanelKind]int)}
	for _, p := range r.panels {
		s.ByKind[p.Kind]++
	}
	return s
}

func (r *Registry) indexOf(id entity.PanelID) int {
	for i, p := range r.panels {
		if p.ID == id {
			return i
		}
	}
	return -1
}
