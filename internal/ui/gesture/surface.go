package gesture

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/event"
	"github.com/bnema/whiteboard/internal/ui/exclusion"
)

// Options configures a new Surface.
type Options struct {
	ID     entity.PanelID
	Bus    *event.Bus
	Config Config
	// Size is the initial and base size. Scale is measured against it.
	Size entity.Size
	// Display is used for the default size limits. Zero means unknown.
	Display entity.Size
	// Parent bounds the translation. Zero means unbounded.
	Parent   entity.Size
	Position entity.Point
	Layer    *exclusion.Layer
}

// Surface is the touch state machine and transform of a single panel.
// It is not safe for concurrent use; all calls must come from the event
// goroutine.
type Surface struct {
	ctx context.Context
	cfg Config
	id  entity.PanelID
	bus *event.Bus

	layer *exclusion.Layer

	translation entity.Point
	size        entity.Size
	base        entity.Size
	minSize     int
	maxSize     int
	parent      entity.Size
	display     entity.Size

	dragEnabled   bool
	resizeEnabled bool

	state         State
	activePointer int
	passThrough   bool
	pressed       *entity.ControlButton
	lastRaw       entity.Point
	prevDistance  float64

	sizeAnim *transition
	moveAnim *transition
}

// New creates a surface with dragging and resizing enabled.
func New(ctx context.Context, opts Options) *Surface {
	cfg := opts.Config.withDefaults()
	layer := opts.Layer
	if layer == nil {
		layer = exclusion.New(exclusion.DefaultMetrics())
	}
	s := &Surface{
		ctx:           logging.WithPanelID(logging.WithComponent(ctx, "gesture"), opts.ID.Short()),
		cfg:           cfg,
		id:            opts.ID,
		bus:           opts.Bus,
		layer:         layer,
		translation:   opts.Position,
		size:          opts.Size,
		base:          opts.Size,
		parent:        opts.Parent,
		display:       opts.Display,
		dragEnabled:   true,
		resizeEnabled: true,
		activePointer: -1,
	}
	if s.base.Width <= 0 || s.base.Height <= 0 {
		s.base = entity.Square(300)
		s.size = s.base
	}
	s.minSize = cfg.DefaultMinSize
	s.maxSize = math.MaxInt32
	if d := min(s.display.Width, s.display.Height); d > 0 {
		s.maxSize = int(float64(d) * cfg.DefaultMaxFraction)
	}
	if s.maxSize < s.minSize {
		s.maxSize = s.minSize
	}
	s.size = entity.Size{Width: s.clampSide(s.size.Width), Height: s.clampSide(s.size.Height)}
	s.layer.Resize(s.size)
	s.translation = s.clampTranslation(s.translation)
	return s
}

// ID returns the panel id the surface reports events for.
func (s *Surface) ID() entity.PanelID { return s.id }

// Layer returns the exclusion layer of the panel.
func (s *Surface) Layer() *exclusion.Layer { return s.layer }

// State returns the current recognizer state.
func (s *Surface) State() State { return s.state }

// Position returns the translation of the panel in parent coordinates.
func (s *Surface) Position() entity.Point { return s.translation }

// Size returns the current size.
func (s *Surface) Size() entity.Size { return s.size }

// BaseSize returns the size scale is measured against.
func (s *Surface) BaseSize() entity.Size { return s.base }

// SizeLimits returns the current minimum and maximum side length.
func (s *Surface) SizeLimits() (minSize, maxSize int) { return s.minSize, s.maxSize }

// Scale returns the current width relative to the base width.
func (s *Surface) Scale() float64 {
	if s.base.Width == 0 {
		return 1
	}
	return float64(s.size.Width) / float64(s.base.Width)
}

// Bounds returns the panel rectangle in parent coordinates.
func (s *Surface) Bounds() entity.Rect {
	return entity.RectXYWH(s.translation.X, s.translation.Y, float64(s.size.Width), float64(s.size.Height))
}

// DraggingEnabled reports whether the panel can be dragged.
func (s *Surface) DraggingEnabled() bool { return s.dragEnabled }

// ResizingEnabled reports whether the panel can be pinch resized.
func (s *Surface) ResizingEnabled() bool { return s.resizeEnabled }

// SetDraggingEnabled toggles drag recognition. An in-flight drag ends.
func (s *Surface) SetDraggingEnabled(enabled bool) {
	s.dragEnabled = enabled
	if !enabled && (s.state == StatePendingDrag || s.state == StateDragging) {
		s.state = StateIdle
	}
}

// SetResizingEnabled toggles pinch recognition. An in-flight pinch ends.
func (s *Surface) SetResizingEnabled(enabled bool) {
	s.resizeEnabled = enabled
	if !enabled && s.state == StateResizing {
		s.state = StateIdle
		s.prevDistance = 0
	}
}

// Animating reports whether a transition is in flight.
func (s *Surface) Animating() bool {
	return s.sizeAnim != nil || s.moveAnim != nil
}

// SetParentBounds sets the area the translation is clamped to and
// re-clamps the current position.
func (s *Surface) SetParentBounds(parent entity.Size) {
	s.parent = parent
	s.setTranslation(s.translation)
}

// SetSizeLimits sets the pinch and SetSize bounds. The minimum is raised
// to the configured floor, the maximum is capped to the display height,
// and the current size is re-clamped.
func (s *Surface) SetSizeLimits(minSize, maxSize int) {
	minSize = max(minSize, s.cfg.MinSizeFloor)
	if s.display.Height > 0 {
		maxSize = min(maxSize, s.display.Height)
	}
	if minSize > maxSize {
		minSize, maxSize = maxSize, minSize
	}
	s.minSize, s.maxSize = minSize, maxSize
	s.applySize(s.size.Width, s.size.Height)
}

// SetSize resizes the panel, clamping each side to the size limits.
func (s *Surface) SetSize(width, height int, animate bool) {
	width, height = s.clampSide(width), s.clampSide(height)
	if animate {
		s.sizeAnim = newTransition(sizeVec(s.size), r2.Vec{X: float64(width), Y: float64(height)}, s.cfg.AnimationDuration)
		return
	}
	s.sizeAnim = nil
	s.applySize(width, height)
}

// ResizeTo sets a square size.
func (s *Surface) ResizeTo(side int, animate bool) {
	s.SetSize(side, side, animate)
}

// ZoomTo sets the size to factor times the base size.
func (s *Surface) ZoomTo(factor float64, animate bool) {
	s.SetSize(int(float64(s.base.Width)*factor), int(float64(s.base.Height)*factor), animate)
}

// MoveTo sets the translation, clamped to the parent bounds.
func (s *Surface) MoveTo(x, y float64, animate bool) {
	if animate {
		s.moveAnim = newTransition(s.translation.Vec(), r2.Vec{X: x, Y: y}, s.cfg.AnimationDuration)
		return
	}
	s.moveAnim = nil
	s.setTranslation(entity.Pt(x, y))
}

// ResetTransform cancels transitions, restores the base size and moves the
// panel to the reset position.
func (s *Surface) ResetTransform() {
	s.sizeAnim = nil
	s.moveAnim = nil
	s.applySize(s.base.Width, s.base.Height)
	s.setTranslation(s.cfg.ResetPosition)
}

// Advance steps in-flight transitions to now. It reports whether any
// transition is still running afterwards.
func (s *Surface) Advance(now time.Time) bool {
	if s.sizeAnim != nil {
		v, done := s.sizeAnim.step(now)
		if done {
			s.sizeAnim = nil
		}
		s.applySize(int(math.Round(v.X)), int(math.Round(v.Y)))
	}
	if s.moveAnim != nil {
		v, done := s.moveAnim.step(now)
		if done {
			s.moveAnim = nil
		}
		s.setTranslation(entity.PointFromVec(v))
	}
	return s.Animating()
}

func sizeVec(sz entity.Size) r2.Vec {
	return r2.Vec{X: float64(sz.Width), Y: float64(sz.Height)}
}

func (s *Surface) clampSide(v int) int {
	return min(max(v, s.minSize), s.maxSize)
}

// applySize clamps, stores, recomputes exclusion rects and re-clamps the
// translation, since the allowed range depends on size.
func (s *Surface) applySize(width, height int) {
	next := entity.Size{Width: s.clampSide(width), Height: s.clampSide(height)}
	if next != s.size {
		s.size = next
		s.layer.Resize(next)
		s.bus.Emit(event.Event{Type: event.PanelResized, PanelID: s.id, Size: next})
	}
	s.setTranslation(s.translation)
}

func (s *Surface) setTranslation(p entity.Point) {
	next := s.clampTranslation(p)
	if next == s.translation {
		return
	}
	s.translation = next
	s.bus.Emit(event.Event{Type: event.PanelMoved, PanelID: s.id, Position: next})
}

// clampTranslation keeps VisibleFraction of each dimension inside the
// parent: x in [-(1-f)*w, parentW - f*w].
func (s *Surface) clampTranslation(p entity.Point) entity.Point {
	if s.parent.Width <= 0 || s.parent.Height <= 0 {
		return p
	}
	f := s.cfg.VisibleFraction
	w, h := float64(s.size.Width), float64(s.size.Height)
	return entity.Point{
		X: clampFloat64(p.X, -(1-f)*w, float64(s.parent.Width)-f*w),
		Y: clampFloat64(p.Y, -(1-f)*h, float64(s.parent.Height)-f*h),
	}
}

func clampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
