// Package exclusion places control buttons around a panel border and
// derives the touch areas where the panel must not start a drag.
package exclusion

import (
	"github.com/bnema/whiteboard/internal/domain/entity"
)

// Metrics configures button geometry, in pixels.
type Metrics struct {
	ButtonSize   float64
	Gap          float64
	TouchPadding float64
}

// DefaultMetrics returns the stock 24px buttons with 4px stacking gap and
// 16px of extra touch area.
func DefaultMetrics() Metrics {
	return Metrics{ButtonSize: 24, Gap: 4, TouchPadding: 16}
}

const (
	insetWithButtons = 40
	insetPlain       = 8
)

// Placement is a button together with its computed geometry in panel-local
// coordinates.
type Placement struct {
	Button    entity.ControlButton
	Footprint entity.Rect
	Exclusion entity.Rect
}

// Layer owns the buttons of one panel. Geometry is recomputed whenever the
// panel size or the button set changes.
type Layer struct {
	metrics    Metrics
	size       entity.Size
	buttons    []entity.ControlButton
	placements []Placement
}

// New creates an empty layer.
func New(m Metrics) *Layer {
	if m.ButtonSize <= 0 {
		m = DefaultMetrics()
	}
	return &Layer{metrics: m}
}

// Add appends a button at its anchor, stacking it after existing buttons
// with the same anchor, and returns it with StackIndex assigned.
func (l *Layer) Add(b entity.ControlButton) entity.ControlButton {
	b.StackIndex = l.countAt(b.Anchor)
	l.buttons = append(l.buttons, b)
	l.recompute()
	return b
}

// Remove drops every button with the given icon and restacks the rest.
// It reports whether anything was removed.
func (l *Layer) Remove(icon string) bool {
	kept := l.buttons[:0]
	removed := false
	for _, b := range l.buttons {
		if b.Icon == icon {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	l.buttons = kept
	if !removed {
		return false
	}
	counts := make(map[entity.Anchor]int)
	for i := range l.buttons {
		a := l.buttons[i].Anchor
		l.buttons[i].StackIndex = counts[a]
		counts[a]++
	}
	l.recompute()
	return true
}

// Resize updates the panel extent.
func (l *Layer) Resize(size entity.Size) {
	if size == l.size {
		return
	}
	l.size = size
	l.recompute()
}

// Placements returns the current button geometry in insertion order.
func (l *Layer) Placements() []Placement {
	out := make([]Placement, len(l.placements))
	copy(out, l.placements)
	return out
}

// Rects returns the exclusion rectangles in insertion order.
func (l *Layer) Rects() []entity.Rect {
	out := make([]entity.Rect, len(l.placements))
	for i, p := range l.placements {
		out[i] = p.Exclusion
	}
	return out
}

// Contains reports whether a panel-local point falls in any exclusion rect.
func (l *Layer) Contains(p entity.Point) bool {
	_, ok := l.ButtonAt(p)
	return ok
}

// ButtonAt returns the button whose exclusion rect contains p. Later
// buttons win when rects overlap.
func (l *Layer) ButtonAt(p entity.Point) (entity.ControlButton, bool) {
	for i := len(l.placements) - 1; i >= 0; i-- {
		if l.placements[i].Exclusion.Contains(p) {
			return l.placements[i].Button, true
		}
	}
	return entity.ControlButton{}, false
}

// ContentInsets returns the top and bottom padding content should keep so
// it is not covered by buttons.
func (l *Layer) ContentInsets() (top, bottom float64) {
	top, bottom = insetPlain, insetPlain
	for _, b := range l.buttons {
		if b.Anchor.IsTop() {
			top = insetWithButtons
		}
		if b.Anchor.IsBottom() {
			bottom = insetWithButtons
		}
	}
	return top, bottom
}

// Len returns the number of buttons.
func (l *Layer) Len() int {
	return len(l.buttons)
}

func (l *Layer) countAt(a entity.Anchor) int {
	n := 0
	for _, b := range l.buttons {
		if b.Anchor == a {
			n++
		}
	}
	return n
}

func (l *Layer) recompute() {
	l.placements = l.placements[:0]
	for _, b := range l.buttons {
		ex := l.exclusionFor(b)
		l.placements = append(l.placements, Placement{
			Button:    b,
			Footprint: ex.Inset(l.metrics.TouchPadding / 2),
			Exclusion: ex,
		})
	}
}

// exclusionFor anchors a (button + padding) square at the button's corner
// or edge, shifted away from that edge by its stack offset.
func (l *Layer) exclusionFor(b entity.ControlButton) entity.Rect {
	s := l.metrics.ButtonSize + l.metrics.TouchPadding
	off := float64(b.StackIndex) * (l.metrics.ButtonSize + l.metrics.Gap)
	w, h := float64(l.size.Width), float64(l.size.Height)

	var x, y float64
	switch b.Anchor {
	case entity.AnchorTopStart, entity.AnchorBottomStart, entity.AnchorCenterStart:
		x = 0
	case entity.AnchorTopCenter, entity.AnchorBottomCenter:
		x = w/2 - s/2
	case entity.AnchorTopEnd, entity.AnchorBottomEnd, entity.AnchorCenterEnd:
		x = w - s
	}
	switch {
	case b.Anchor.IsTop():
		y = off
	case b.Anchor.IsBottom():
		y = h - s - off
	default:
		y = h/2 - s/2 + off
	}
	return entity.RectXYWH(x, y, s, s)
}
