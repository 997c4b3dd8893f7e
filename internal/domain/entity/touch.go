package entity

// TouchAction identifies the phase of a touch event.
type TouchAction int

const (
	// TouchDown is the first pointer of a gesture going down.
	TouchDown TouchAction = iota
	// TouchPointerDown is an additional pointer going down.
	TouchPointerDown
	// TouchMove reports updated positions for all active pointers.
	TouchMove
	// TouchPointerUp is a non-last pointer lifting.
	TouchPointerUp
	// TouchUp is the last pointer lifting.
	TouchUp
	// TouchCancel aborts the gesture.
	TouchCancel
)

func (a TouchAction) String() string {
	switch a {
	case TouchDown:
		return "down"
	case TouchPointerDown:
		return "pointer_down"
	case TouchMove:
		return "move"
	case TouchPointerUp:
		return "pointer_up"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseTouchAction converts the String form back to a TouchAction.
func ParseTouchAction(s string) (TouchAction, bool) {
	for a := TouchDown; a <= TouchCancel; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return 0, false
}

// Pointer is one contact point in canvas coordinates.
type Pointer struct {
	ID int
	Point
}

// TouchEvent is a raw touch sample. Pointers lists every pointer that is
// down while the event is delivered, including one that is lifting.
type TouchEvent struct {
	Action    TouchAction
	PointerID int
	Pointers  []Pointer
}

// Primary returns the first pointer of the event.
func (e TouchEvent) Primary() (Pointer, bool) {
	if len(e.Pointers) == 0 {
		return Pointer{}, false
	}
	return e.Pointers[0], true
}

// PointerCount returns the number of pointers in the event.
func (e TouchEvent) PointerCount() int {
	return len(e.Pointers)
}

// Find returns the pointer with the given id.
func (e TouchEvent) Find(id int) (Pointer, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}

// Translated returns a copy of the event with every pointer offset by -origin.
func (e TouchEvent) Translated(origin Point) TouchEvent {
	out := TouchEvent{Action: e.Action, PointerID: e.PointerID, Pointers: make([]Pointer, len(e.Pointers))}
	for i, p := range e.Pointers {
		out.Pointers[i] = Pointer{ID: p.ID, Point: p.Sub(origin)}
	}
	return out
}

// SingleTouch builds a one-pointer event with pointer id 0.
func SingleTouch(action TouchAction, x, y float64) TouchEvent {
	return TouchEvent{Action: action, PointerID: 0, Pointers: []Pointer{{ID: 0, Point: Pt(x, y)}}}
}

// MultiTouch builds an event from explicit pointers.
func MultiTouch(action TouchAction, pointerID int, pointers ...Pointer) TouchEvent {
	return TouchEvent{Action: action, PointerID: pointerID, Pointers: pointers}
}
