package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/whiteboard/internal/application/port"
	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/annotation"
	"github.com/bnema/whiteboard/internal/ui/content"
	"github.com/bnema/whiteboard/internal/ui/event"
	"github.com/bnema/whiteboard/internal/ui/input"
	"github.com/bnema/whiteboard/internal/ui/mainloop"
	"github.com/bnema/whiteboard/internal/ui/registry"
)

const autosaveKey = "autosave"

// ErrNoBoard is returned by Save and Restore when no board id is set.
var ErrNoBoard = errors.New("no board selected")

// App is the live whiteboard. Board state belongs to the main loop
// goroutine: other goroutines reach it through Exec and Post, and the
// accessors below must only be called from inside those.
type App struct {
	deps *Dependencies
	ctx  context.Context

	bus        *event.Bus
	registry   *registry.Registry
	annotation *annotation.Engine
	router     *input.Router
	frames     *frameScheduler

	saveUC    *usecase.SaveWhiteboardUseCase
	restoreUC *usecase.RestoreWhiteboardUseCase

	loop     *mainloop.Loop
	autosave *mainloop.Coalescer

	unsub     func()
	animating bool
	restoring bool
	saves     int
}

// New wires the registry, annotation engine and router onto one bus.
func New(deps *Dependencies) (*App, error) {
	if deps == nil {
		return nil, ErrMissingDependency("Dependencies")
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	ctx := logging.WithComponent(deps.Ctx, "whiteboard")
	if deps.BoardID != "" {
		ctx = logging.WithBoardID(ctx, string(deps.BoardID))
	}

	a := &App{
		deps:   deps,
		ctx:    ctx,
		bus:    event.NewBus(),
		frames: &frameScheduler{},
	}

	factory := content.Factory{Scheduler: a.frames.handle}
	a.registry = registry.New(ctx, a.bus, factory, RegistryConfig(deps.Config))

	opts := AnnotationOptions(deps.Config)
	opts.Bus = a.bus
	a.annotation = annotation.New(ctx, opts)
	a.router = input.NewRouter(ctx, a.annotation, a.registry, a.bus)

	if deps.Store != nil {
		a.saveUC = usecase.NewSaveWhiteboardUseCase(deps.Store, a.registry)
		a.restoreUC = usecase.NewRestoreWhiteboardUseCase(deps.Store, a.registry)
	}

	a.loop = mainloop.New(ctx, mainloop.Options{OnFrame: a.onFrame})
	if a.autosaveEnabled() {
		delay := time.Duration(deps.Config.Autosave.DebounceMs) * time.Millisecond
		a.autosave = mainloop.NewCoalescer(a.loop.Post, delay)
	}
	a.unsub = a.bus.SubscribeAll(a.onEvent)

	if deps.Config.Annotation.StartEnabled {
		a.annotation.SetMode(true)
	}
	return a, nil
}

func (a *App) autosaveEnabled() bool {
	return a.deps.Config.Autosave.Enabled && a.deps.BoardID != "" && a.saveUC != nil
}

// Run drives the main loop until ctx is done. A pending autosave is
// written before Run returns.
func (a *App) Run(ctx context.Context) error {
	err := a.loop.Run(ctx)
	if a.autosave != nil {
		a.autosave.Flush()
		a.autosave.Destroy()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Exec runs fn on the main loop and waits for it.
func (a *App) Exec(ctx context.Context, fn func(*App) error) error {
	return a.loop.Call(ctx, func() error { return fn(a) })
}

// Post queues fn on the main loop without waiting.
func (a *App) Post(fn func(*App)) bool {
	return a.loop.Post(func() { fn(a) })
}

// Close detaches every component from the bus.
func (a *App) Close() {
	if a.unsub != nil {
		a.unsub()
		a.unsub = nil
	}
	a.router.Close()
	a.registry.Close()
}

// Context returns the logger-carrying context of the board.
func (a *App) Context() context.Context { return a.ctx }

// Bus returns the event bus shared by all components.
func (a *App) Bus() *event.Bus { return a.bus }

// Registry returns the panel registry.
func (a *App) Registry() *registry.Registry { return a.registry }

// Annotation returns the annotation engine.
func (a *App) Annotation() *annotation.Engine { return a.annotation }

// Dispatch routes one touch event to its target.
func (a *App) Dispatch(ev entity.TouchEvent) bool {
	return a.router.Dispatch(ev)
}

// AddPanel adds a panel of kind; an empty kind uses the configured default.
func (a *App) AddPanel(kind entity.PanelKind) (*registry.Panel, error) {
	if kind == "" {
		kind = entity.PanelKind(a.deps.Config.Panels.DefaultKind)
	}
	return a.registry.Add(a.ctx, kind)
}

// Save writes the board immediately.
func (a *App) Save(ctx context.Context) (*usecase.SaveOutput, error) {
	if a.deps.BoardID == "" || a.saveUC == nil {
		return nil, ErrNoBoard
	}
	out, err := a.saveUC.Execute(ctx, usecase.SaveInput{BoardID: a.deps.BoardID})
	if err != nil {
		return nil, err
	}
	a.saves++
	return out, nil
}

// Restore replaces the canvas with the saved board.
func (a *App) Restore(ctx context.Context) (*usecase.RestoreOutput, error) {
	if a.deps.BoardID == "" || a.restoreUC == nil {
		return nil, ErrNoBoard
	}

	// The panel events of a restore describe the saved board itself.
	a.restoring = true
	out, err := a.restoreUC.Execute(ctx, usecase.RestoreInput{BoardID: a.deps.BoardID})
	a.restoring = false
	if err != nil {
		return nil, err
	}
	if out.Skipped != nil {
		logging.FromContext(a.ctx).Warn().Err(out.Skipped).Msg("some panels could not be restored")
	}
	return out, nil
}

// Saves returns how many saves succeeded, manual or automatic.
func (a *App) Saves() int { return a.saves }

// Tick advances animations to now. The main loop calls it every frame.
func (a *App) Tick(now time.Time) bool {
	return a.registry.Tick(now)
}

func (a *App) onFrame(now time.Time) {
	animating := a.Tick(now)
	if animating || a.animating || a.frames.Running() > 0 {
		a.redraw()
	}
	a.animating = animating
}

func (a *App) onEvent(ev event.Event) {
	switch ev.Type {
	case event.PanelAdded, event.PanelRemoved, event.PanelMoved, event.PanelResized:
		a.scheduleAutosave()
	case event.CapacityExceeded:
		logging.FromContext(a.ctx).Info().Int("limit", ev.Count).Msg("panel limit reached")
	}
}

func (a *App) scheduleAutosave() {
	if a.autosave == nil || a.restoring {
		return
	}
	a.autosave.Post(autosaveKey, func() {
		if _, err := a.Save(a.ctx); err != nil {
			logging.FromContext(a.ctx).Error().Err(err).Msg("autosave failed")
		}
	})
}

func (a *App) redraw() {
	if a.deps.OnRedraw != nil {
		a.deps.OnRedraw()
	}
}

// Describe summarizes the board for status lines.
func (a *App) Describe() string {
	return fmt.Sprintf("%d/%d panels, %d strokes", a.registry.Count(), a.registry.Capacity(), a.annotation.Len())
}

// frameScheduler counts 3D panels that currently want frames.
type frameScheduler struct {
	running int
}

func (f *frameScheduler) handle() port.FrameScheduler {
	return &frameHandle{scheduler: f}
}

// Running returns the number of panels requesting frames.
func (f *frameScheduler) Running() int { return f.running }

type frameHandle struct {
	scheduler *frameScheduler
	on        bool
}

func (h *frameHandle) Start() {
	if !h.on {
		h.on = true
		h.scheduler.running++
	}
}

func (h *frameHandle) Stop() {
	if h.on {
		h.on = false
		h.scheduler.running--
	}
}
