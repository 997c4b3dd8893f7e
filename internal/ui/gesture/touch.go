package gesture

import (
	"math"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
)

// Handle feeds one raw touch event (parent coordinates) through the state
// machine and reports whether the panel consumed it. Panics are recovered
// and reset the recognizer.
func (s *Surface) Handle(ev entity.TouchEvent) (consumed bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.LogPanic(s.ctx, "gesture.Handle", r)
			s.reset()
			consumed = false
		}
	}()

	switch ev.Action {
	case entity.TouchDown:
		return s.onDown(ev)
	case entity.TouchPointerDown:
		return s.onPointerDown(ev)
	case entity.TouchMove:
		return s.onMove(ev)
	case entity.TouchPointerUp:
		return s.onPointerUp(ev)
	case entity.TouchUp:
		return s.onUp(ev)
	case entity.TouchCancel:
		active := s.state != StateIdle || s.pressed != nil
		s.reset()
		return active
	}
	return false
}

func (s *Surface) local(p entity.Point) entity.Point {
	return p.Sub(s.translation)
}

func (s *Surface) onDown(ev entity.TouchEvent) bool {
	p, ok := ev.Primary()
	if !ok {
		return false
	}
	s.reset()
	s.activePointer = p.ID
	s.lastRaw = p.Point

	// Buttons sit on top of the panel and take taps even when the panel
	// itself is locked.
	if btn, hit := s.layer.ButtonAt(s.local(p.Point)); hit {
		s.passThrough = true
		s.pressed = &btn
	}

	if !s.dragEnabled && !s.resizeEnabled {
		return s.pressed != nil
	}
	if s.dragEnabled && !s.passThrough {
		s.state = StatePendingDrag
	}
	return true
}

func (s *Surface) onPointerDown(ev entity.TouchEvent) bool {
	if !s.resizeEnabled || ev.PointerCount() != 2 {
		return s.state != StateIdle
	}
	d := ev.Pointers[0].Distance(ev.Pointers[1].Point)
	s.state = StateResizing
	s.pressed = nil
	s.prevDistance = 0
	if d > 0 && !math.IsNaN(d) {
		s.prevDistance = d
	}
	s.sizeAnim = nil
	logging.FromContext(s.ctx).Debug().Float64("distance", d).Msg("pinch started")
	return true
}

func (s *Surface) onMove(ev entity.TouchEvent) bool {
	switch s.state {
	case StateResizing:
		s.pinchStep(ev)
		return true
	case StatePendingDrag:
		p, ok := s.trackedPointer(ev)
		if !ok {
			return true
		}
		dx, dy := p.X-s.lastRaw.X, p.Y-s.lastRaw.Y
		if math.Abs(dx) <= s.cfg.DragSlop && math.Abs(dy) <= s.cfg.DragSlop {
			return true
		}
		s.state = StateDragging
		s.moveAnim = nil
		logging.FromContext(s.ctx).Debug().Float64("dx", dx).Float64("dy", dy).Msg("drag started")
		s.dragStep(p.Point)
		return true
	case StateDragging:
		if p, ok := s.trackedPointer(ev); ok {
			s.dragStep(p.Point)
		}
		return true
	default:
		return s.pressed != nil
	}
}

// trackedPointer returns the active pointer, or the primary one if the
// active id is not in the event.
func (s *Surface) trackedPointer(ev entity.TouchEvent) (entity.Pointer, bool) {
	if p, ok := ev.Find(s.activePointer); ok {
		return p, true
	}
	return ev.Primary()
}

// dragStep applies raw - lastRaw to the translation unless the pointer is
// over an exclusion rect. lastRaw always follows the pointer so leaving a
// rect does not produce a jump.
func (s *Surface) dragStep(raw entity.Point) {
	if !raw.IsFinite() {
		return
	}
	delta := raw.Sub(s.lastRaw)
	inside := s.layer.Contains(s.local(raw))
	s.lastRaw = raw
	if inside {
		return
	}
	s.setTranslation(s.translation.Add(delta))
}

func (s *Surface) pinchStep(ev entity.TouchEvent) {
	if ev.PointerCount() < 2 {
		// A pinch with a single pointer cannot be measured.
		return
	}
	d := ev.Pointers[0].Distance(ev.Pointers[1].Point)
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return
	}
	if s.prevDistance <= 0 {
		s.prevDistance = d
		return
	}

	factor := d / s.prevDistance
	raw := int(float64(s.size.Width) * factor)
	next := s.clampSide(raw)
	if next == s.size.Width && next != raw {
		// Pinned at a limit: rebase so reversing direction responds at once.
		s.prevDistance = d
		return
	}
	if abs(next-s.size.Width) < s.cfg.ResizeThreshold {
		return
	}
	s.applySize(next, next)
	s.prevDistance = d
}

func (s *Surface) onPointerUp(ev entity.TouchEvent) bool {
	if s.state == StateResizing {
		if ev.PointerCount() <= 2 {
			s.state = StateIdle
			s.prevDistance = 0
			logging.FromContext(s.ctx).Debug().Int("side", s.size.Width).Msg("pinch ended")
		}
		return true
	}
	if ev.PointerID == s.activePointer {
		for _, p := range ev.Pointers {
			if p.ID != ev.PointerID {
				s.activePointer = p.ID
				s.lastRaw = p.Point
				break
			}
		}
	}
	return s.state != StateIdle
}

func (s *Surface) onUp(ev entity.TouchEvent) bool {
	pressed := s.pressed
	active := s.state != StateIdle
	s.reset()

	if pressed != nil {
		if p, ok := ev.Primary(); ok {
			if btn, hit := s.layer.ButtonAt(s.local(p.Point)); hit && btn.Icon == pressed.Icon {
				logging.FromContext(s.ctx).Debug().Str("button", btn.Icon).Msg("control button tapped")
				if btn.Action != nil {
					btn.Action()
				}
			}
		}
		return true
	}
	return active
}

func (s *Surface) reset() {
	s.state = StateIdle
	s.activePointer = -1
	s.passThrough = false
	s.pressed = nil
	s.prevDistance = 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
