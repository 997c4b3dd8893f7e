package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/whiteboard/internal/cli/styles"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/ui"
)

// wheelSpread is the finger distance, in canvas pixels, of a synthetic
// wheel pinch; wheelStep is how far one notch moves the fingers apart.
const (
	wheelSpread = 100.0
	wheelStep   = 10.0
)

// pointerTracker turns terminal mouse events into touch events. The left
// button is the finger; the wheel becomes a short two-finger pinch around
// the cursor; the right button cancels the gesture in progress.
type pointerTracker struct {
	pressed bool
}

func (t *pointerTracker) touches(msg tea.MouseMsg, canvas entity.Size, cols, rows int) []entity.TouchEvent {
	p := styles.CellToCanvas(canvas, cols, rows, msg.X, msg.Y)

	switch {
	case isWheel(msg):
		if t.pressed {
			return nil
		}
		to := wheelSpread + wheelStep
		if msg.Button == tea.MouseButtonWheelDown {
			to = wheelSpread - wheelStep
		}
		return pinchAt(p, wheelSpread, to)

	case msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress:
		if !t.pressed {
			return nil
		}
		t.pressed = false
		return []entity.TouchEvent{entity.SingleTouch(entity.TouchCancel, p.X, p.Y)}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		t.pressed = true
		return []entity.TouchEvent{entity.SingleTouch(entity.TouchDown, p.X, p.Y)}

	case msg.Action == tea.MouseActionMotion && t.pressed:
		return []entity.TouchEvent{entity.SingleTouch(entity.TouchMove, p.X, p.Y)}

	case msg.Action == tea.MouseActionRelease && t.pressed:
		t.pressed = false
		return []entity.TouchEvent{entity.SingleTouch(entity.TouchUp, p.X, p.Y)}
	}
	return nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
}

// dispatch feeds touches to the board. Must run on the board loop. A wheel
// pinch is dropped while annotation mode is on, since the drawing layer
// takes every touch and would turn it into a stroke.
func dispatch(a *ui.App, events []entity.TouchEvent, wheel bool) {
	if wheel && a.Annotation().Mode() {
		return
	}
	for _, ev := range events {
		a.Dispatch(ev)
	}
}

// pinchAt builds a full two-finger gesture centered on c whose finger
// distance goes from one value to another.
func pinchAt(c entity.Point, from, to float64) []entity.TouchEvent {
	fingers := func(d float64) []entity.Pointer {
		return []entity.Pointer{
			{ID: 0, Point: entity.Pt(c.X-d/2, c.Y)},
			{ID: 1, Point: entity.Pt(c.X+d/2, c.Y)},
		}
	}
	start, end := fingers(from), fingers(to)
	return []entity.TouchEvent{
		entity.MultiTouch(entity.TouchDown, 0, start[0]),
		entity.MultiTouch(entity.TouchPointerDown, 1, start...),
		entity.MultiTouch(entity.TouchMove, 0, end...),
		entity.MultiTouch(entity.TouchPointerUp, 1, end...),
		entity.MultiTouch(entity.TouchUp, 0, end[0]),
	}
}
