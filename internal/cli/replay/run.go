package replay

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui"
	"github.com/bnema/whiteboard/internal/ui/event"
)

// FrameInterval is the synthetic clock step used by tick steps.
const FrameInterval = 16 * time.Millisecond

const defaultMoves = 8

// Report summarizes a finished replay.
type Report struct {
	Steps  int
	Events map[event.Type]int
	// Errors collects step failures that did not stop the replay, such as
	// adding past capacity.
	Errors []error
	Final  ui.Frame
	Clock  time.Time
}

// Run executes every step of s against app on the calling goroutine. The
// app's main loop must not be running. Animations advance on a synthetic
// clock starting at start.
func Run(ctx context.Context, app *ui.App, s *Script, start time.Time) (*Report, error) {
	log := logging.FromContext(ctx)
	r := &runner{app: app, clock: start, report: &Report{Events: make(map[event.Type]int)}}

	unsub := app.Bus().SubscribeAll(func(ev event.Event) { r.report.Events[ev.Type]++ })
	defer unsub()

	app.Tick(r.clock)
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return r.report, err
		}
		if err := r.step(step); err != nil {
			if errors.Is(err, ErrUnknownAction) {
				return r.report, fmt.Errorf("step %d: %w", i+1, err)
			}
			log.Warn().Int("step", i+1).Str("action", step.Action).Err(err).Msg("replay step failed")
			r.report.Errors = append(r.report.Errors, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err))
		}
		r.report.Steps++
	}

	// Let pending animations land before taking the final frame.
	r.advance(time.Second)
	r.report.Final = app.Frame()
	r.report.Clock = r.clock
	log.Debug().Int("steps", r.report.Steps).Int("errors", len(r.report.Errors)).Msg("replay finished")
	return r.report, nil
}

type runner struct {
	app    *ui.App
	clock  time.Time
	report *Report
}

func (r *runner) advance(d time.Duration) {
	end := r.clock.Add(d)
	for r.clock.Before(end) {
		r.clock = r.clock.Add(FrameInterval)
		r.app.Tick(r.clock)
	}
}

func (r *runner) panelAt(index int) (entity.PanelID, error) {
	panels := r.app.Registry().Panels()
	if index < 0 {
		index += len(panels)
	}
	if index < 0 || index >= len(panels) {
		return "", fmt.Errorf("no panel at index %d (have %d)", index, len(panels))
	}
	return panels[index].ID, nil
}

func (r *runner) step(s Step) error {
	reg := r.app.Registry()
	ann := r.app.Annotation()
	ctx := r.app.Context()

	switch s.Action {
	case "add":
		var kind entity.PanelKind
		if s.Kind != "" {
			k, err := ParseKind(s.Kind)
			if err != nil {
				return err
			}
			kind = k
		}
		_, err := r.app.AddPanel(kind)
		return err
	case "remove":
		id, err := r.panelAt(s.Index)
		if err != nil {
			return err
		}
		return reg.Remove(ctx, id)
	case "front":
		id, err := r.panelAt(s.Index)
		if err != nil {
			return err
		}
		return reg.BringToFront(id)
	case "touch":
		return r.touch(s)
	case "drag":
		r.drag(s)
	case "pinch":
		r.pinch(s)
	case "tick":
		r.advance(time.Duration(s.Ms) * time.Millisecond)
	case "annotate":
		if s.On == nil {
			ann.ToggleMode()
		} else {
			ann.SetMode(*s.On)
		}
	case "tool":
		tool, err := entity.ParseTool(s.Tool)
		if err != nil {
			return err
		}
		ann.SelectTool(tool)
	case "undo":
		ann.Undo()
	case "clear":
		ann.Clear()
	case "grid":
		reg.ArrangeInGrid()
	case "zoom_all":
		if s.Scale <= 0 {
			return fmt.Errorf("zoom_all needs a positive scale, got %v", s.Scale)
		}
		reg.ZoomAll(s.Scale)
	case "reset_all":
		reg.ResetAll()
	case "toggle_drag":
		reg.ToggleDraggingForAll()
	case "toggle_resize":
		reg.ToggleResizingForAll()
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, s.Action)
	}
	return nil
}

func (r *runner) touch(s Step) error {
	action, ok := entity.ParseTouchAction(s.Touch)
	if !ok {
		return fmt.Errorf("unknown touch phase %q", s.Touch)
	}
	if len(s.Pointers) == 0 {
		r.app.Dispatch(entity.SingleTouch(action, s.X, s.Y))
		return nil
	}
	pointers := make([]entity.Pointer, 0, len(s.Pointers))
	for _, p := range s.Pointers {
		pointers = append(pointers, entity.Pointer{ID: p.ID, Point: entity.Pt(p.X, p.Y)})
	}
	r.app.Dispatch(entity.MultiTouch(action, s.Pointer, pointers...))
	return nil
}

func moves(s Step) int {
	if s.Moves > 0 {
		return s.Moves
	}
	return defaultMoves
}

// drag presses at (X,Y), moves in a straight line to (ToX,ToY) and lifts.
func (r *runner) drag(s Step) {
	n := moves(s)
	r.app.Dispatch(entity.SingleTouch(entity.TouchDown, s.X, s.Y))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		x := s.X + (s.ToX-s.X)*t
		y := s.Y + (s.ToY-s.Y)*t
		r.app.Dispatch(entity.SingleTouch(entity.TouchMove, x, y))
	}
	r.app.Dispatch(entity.SingleTouch(entity.TouchUp, s.ToX, s.ToY))
}

// pinch places two fingers on a horizontal line centered on (X,Y) and
// spreads them from distance From to To.
func (r *runner) pinch(s Step) {
	center := entity.Pt(s.X, s.Y)
	fingers := func(d float64) []entity.Pointer {
		half := d / 2
		return []entity.Pointer{
			{ID: 0, Point: entity.Pt(center.X-half, center.Y)},
			{ID: 1, Point: entity.Pt(center.X+half, center.Y)},
		}
	}

	n := moves(s)
	start := fingers(s.From)
	r.app.Dispatch(entity.MultiTouch(entity.TouchDown, 0, start[0]))
	r.app.Dispatch(entity.MultiTouch(entity.TouchPointerDown, 1, start...))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// Geometric steps keep every move's scale factor equal.
		d := s.From * math.Pow(s.To/s.From, t)
		r.app.Dispatch(entity.MultiTouch(entity.TouchMove, 0, fingers(d)...))
	}
	end := fingers(s.To)
	r.app.Dispatch(entity.MultiTouch(entity.TouchPointerUp, 1, end...))
	r.app.Dispatch(entity.MultiTouch(entity.TouchUp, 0, end[0]))
}
