package annotation

import (
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/event"
)

// Mode reports whether annotation mode is on. In annotation mode the tool
// palette is visible and the engine receives touches.
func (e *Engine) Mode() bool { return e.mode }

// PaletteVisible reports whether the tool palette should be shown.
func (e *Engine) PaletteVisible() bool { return e.mode }

// SetMode turns annotation mode on or off. Turning it off mid-gesture
// discards the in-progress shape; committed strokes stay visible.
func (e *Engine) SetMode(on bool) {
	if e.mode == on {
		return
	}
	if !on {
		e.abort()
	}
	e.mode = on
	logging.FromContext(e.ctx).Info().Bool("enabled", on).Msg("annotation mode changed")
	e.bus.Emit(event.Event{Type: event.AnnotationModeChanged, Active: on})
}

// ToggleMode flips annotation mode and returns the new value.
func (e *Engine) ToggleMode() bool {
	e.SetMode(!e.mode)
	return e.mode
}
