package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui/content"
	"github.com/bnema/whiteboard/internal/ui/event"
	"github.com/bnema/whiteboard/internal/ui/registry"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// pausableContent records render pause/resume calls.
type pausableContent struct {
	*content.Basic
	paused  int
	resumed int
}

func (p *pausableContent) PauseRendering()  { p.paused++ }
func (p *pausableContent) ResumeRendering() { p.resumed++ }

type fixture struct {
	ctx    context.Context
	bus    *event.Bus
	reg    *registry.Registry
	events []event.Event
}

func (f *fixture) count(t event.Type) int {
	n := 0
	for _, ev := range f.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{ctx: testContext(), bus: event.NewBus()}
	f.bus.SubscribeAll(func(ev event.Event) { f.events = append(f.events, ev) })

	cfg := registry.DefaultConfig()
	cfg.Canvas = entity.Size{Width: 2000, Height: 2000}
	cfg.Display = entity.Size{Width: 2000, Height: 2000}
	f.reg = registry.New(f.ctx, f.bus, content.Factory{}, cfg)
	t.Cleanup(f.reg.Close)
	return f
}

func settle(reg *registry.Registry) {
	t0 := time.Unix(5000, 0)
	reg.Tick(t0)
	reg.Tick(t0.Add(time.Second))
}

func TestAdd_CascadesPanels(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.reg.Add(f.ctx, entity.PanelStandard)
		require.NoError(t, err)
	}

	panels := f.reg.Panels()
	require.Len(t, panels, 3)
	assert.Equal(t, entity.Pt(0, 100), panels[0].Surface.Position())
	assert.Equal(t, entity.Pt(50, 150), panels[1].Surface.Position())
	assert.Equal(t, entity.Pt(100, 200), panels[2].Surface.Position())
	assert.Equal(t, 3, f.count(event.PanelAdded))

	last := f.events[len(f.events)-1]
	assert.Equal(t, event.Event{Type: event.PanelCountChanged, Count: 3}, last)
}

func TestAdd_RejectsBeyondCapacity(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < f.reg.Capacity(); i++ {
		_, err := f.reg.Add(f.ctx, entity.PanelMinimal)
		require.NoError(t, err)
	}
	before := f.reg.Panels()

	p, err := f.reg.Add(f.ctx, entity.PanelText)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, registry.ErrCapacityExceeded)
	assert.Equal(t, before, f.reg.Panels(), "collection unchanged")
	assert.Equal(t, 1, f.count(event.CapacityExceeded))
}

func TestAdd_InvalidKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.reg.Add(f.ctx, "HOLOGRAM")

	assert.ErrorIs(t, err, registry.ErrInvalidPanelKind)
	assert.Zero(t, f.reg.Count())
}

func TestRemove_PausesContent(t *testing.T) {
	f := newFixture(t)
	c := &pausableContent{Basic: content.NewBasic(entity.PanelStandard)}
	p, err := f.reg.AddContent(f.ctx, c)
	require.NoError(t, err)

	require.NoError(t, f.reg.Remove(f.ctx, p.ID))

	assert.Equal(t, 1, c.paused)
	assert.Zero(t, f.reg.Count())
	assert.Equal(t, 1, f.count(event.PanelRemoved))

	assert.ErrorIs(t, f.reg.Remove(f.ctx, p.ID), registry.ErrPanelNotFound)
}

func TestDrawingState_PausesAndResumesRendering(t *testing.T) {
	f := newFixture(t)
	c := &pausableContent{Basic: content.NewBasic(entity.PanelStandard)}
	_, err := f.reg.AddContent(f.ctx, c)
	require.NoError(t, err)
	_, err = f.reg.Add(f.ctx, entity.PanelText)
	require.NoError(t, err)

	f.bus.Emit(event.Event{Type: event.DrawingStateChanged, Active: true})
	assert.Equal(t, 1, c.paused)

	f.bus.Emit(event.Event{Type: event.DrawingStateChanged, Active: false})
	assert.Equal(t, 1, c.resumed)
}

func TestCloseButton_RemovesPanel(t *testing.T) {
	f := newFixture(t)
	p, err := f.reg.Add(f.ctx, entity.PanelStandard)
	require.NoError(t, err)

	// 300x300 panel at (0,100): close button rect is (260,100)-(300,140).
	p.Surface.Handle(entity.SingleTouch(entity.TouchDown, 280, 110))
	p.Surface.Handle(entity.SingleTouch(entity.TouchUp, 280, 110))

	assert.Zero(t, f.reg.Count())
}

func TestPanelAt_ReturnsTopmost(t *testing.T) {
	f := newFixture(t)
	first, err := f.reg.Add(f.ctx, entity.PanelStandard)
	require.NoError(t, err)
	second, err := f.reg.Add(f.ctx, entity.PanelStandard)
	require.NoError(t, err)

	hit, ok := f.reg.PanelAt(entity.Pt(100, 200))
	require.True(t, ok)
	assert.Equal(t, second.ID, hit.ID)

	require.NoError(t, f.reg.BringToFront(first.ID))
	hit, ok = f.reg.PanelAt(entity.Pt(100, 200))
	require.True(t, ok)
	assert.Equal(t, first.ID, hit.ID)

	_, ok = f.reg.PanelAt(entity.Pt(1900, 1900))
	assert.False(t, ok)
}

func TestToggleDraggingForAll(t *testing.T) {
	f := newFixture(t)
	a, _ := f.reg.Add(f.ctx, entity.PanelStandard)
	b, _ := f.reg.Add(f.ctx, entity.PanelStandard)

	a.Surface.SetDraggingEnabled(false)
	assert.True(t, f.reg.ToggleDraggingForAll(), "mixed state enables all")
	assert.True(t, a.Surface.DraggingEnabled())
	assert.True(t, b.Surface.DraggingEnabled())

	assert.False(t, f.reg.ToggleDraggingForAll(), "uniformly enabled disables all")
	assert.False(t, a.Surface.DraggingEnabled())
	assert.False(t, b.Surface.DraggingEnabled())
}

func TestToggleResizingForAll(t *testing.T) {
	f := newFixture(t)
	a, _ := f.reg.Add(f.ctx, entity.PanelStandard)
	b, _ := f.reg.Add(f.ctx, entity.PanelStandard)

	assert.False(t, f.reg.ToggleResizingForAll())
	assert.False(t, a.Surface.ResizingEnabled())

	b.Surface.SetResizingEnabled(true)
	assert.True(t, f.reg.ToggleResizingForAll())
	assert.True(t, a.Surface.ResizingEnabled())
	assert.True(t, b.Surface.ResizingEnabled())
}

func TestArrangeInGrid(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		p, err := f.reg.Add(f.ctx, entity.PanelStandard)
		require.NoError(t, err)
		p.Surface.ZoomTo(1.5, false)
	}

	f.reg.ArrangeInGrid()
	settle(f.reg)

	panels := f.reg.Panels()
	assert.Equal(t, entity.Pt(50, 100), panels[0].Surface.Position())
	assert.Equal(t, entity.Pt(370, 100), panels[1].Surface.Position())
	assert.Equal(t, entity.Pt(50, 420), panels[2].Surface.Position())
	for _, p := range panels {
		assert.Equal(t, 1.0, p.Surface.Scale())
	}
}

func TestZoomAllAndResetAll(t *testing.T) {
	f := newFixture(t)
	a, _ := f.reg.Add(f.ctx, entity.PanelStandard)
	b, _ := f.reg.Add(f.ctx, entity.PanelImage)

	f.reg.ZoomAll(2)
	assert.True(t, f.reg.Tick(time.Unix(0, 0)), "zoom is animated")
	settle(f.reg)
	assert.Equal(t, entity.Square(600), a.Surface.Size())
	assert.Equal(t, entity.Square(640), b.Surface.Size())

	a.Surface.MoveTo(900, 900, false)
	f.reg.ResetAll()
	settle(f.reg)
	assert.Equal(t, entity.Square(300), a.Surface.Size())
	assert.Equal(t, entity.Pt(0, 100), a.Surface.Position())
	assert.Equal(t, entity.Pt(50, 150), b.Surface.Position())
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		_, err := f.reg.Add(f.ctx, entity.PanelText)
		require.NoError(t, err)
	}

	f.reg.Clear(f.ctx)

	assert.Zero(t, f.reg.Count())
	assert.Equal(t, 3, f.count(event.PanelRemoved))
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	_, _ = f.reg.Add(f.ctx, entity.PanelText)
	_, _ = f.reg.Add(f.ctx, entity.PanelText)
	_, _ = f.reg.Add(f.ctx, entity.PanelImage)

	s := f.reg.Stats()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 8, s.Capacity)
	assert.Equal(t, 2, s.ByKind[entity.PanelText])
	assert.Len(t, f.reg.PanelsByKind(entity.PanelImage), 1)
}
