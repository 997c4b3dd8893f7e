package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui"
)

func newBoard(t *testing.T) *ui.App {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
	app, err := ui.New(&ui.Dependencies{Ctx: ctx, Config: config.DefaultConfig()})
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func TestFrameSink_LatestWins(t *testing.T) {
	sink := NewFrameSink()

	sink.Publish(ui.Frame{Status: "first"})
	sink.Publish(ui.Frame{Status: "second"})

	msg := sink.Next(context.Background())()
	require.IsType(t, frameMsg{}, msg)
	assert.Equal(t, "second", msg.(frameMsg).Status)
}

func TestFrameSink_NextStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, NewFrameSink().Next(ctx)())
}

func TestPointerTracker_LeftButtonIsOneFinger(t *testing.T) {
	var tr pointerTracker
	canvas := entity.Size{Width: 1000, Height: 1000}

	down := tr.touches(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, canvas, 10, 10)
	move := tr.touches(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, canvas, 10, 10)
	up := tr.touches(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, canvas, 10, 10)

	require.Len(t, down, 1)
	assert.Equal(t, entity.SingleTouch(entity.TouchDown, 50, 50), down[0])
	require.Len(t, move, 1)
	assert.Equal(t, entity.SingleTouch(entity.TouchMove, 550, 50), move[0])
	require.Len(t, up, 1)
	assert.Equal(t, entity.TouchUp, up[0].Action)
	assert.False(t, tr.pressed)
}

func TestPointerTracker_MotionWithoutPressIgnored(t *testing.T) {
	var tr pointerTracker
	canvas := entity.Size{Width: 1000, Height: 1000}

	assert.Empty(t, tr.touches(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion}, canvas, 10, 10))
	assert.Empty(t, tr.touches(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, canvas, 10, 10))
}

func TestPointerTracker_RightButtonCancels(t *testing.T) {
	var tr pointerTracker
	canvas := entity.Size{Width: 1000, Height: 1000}
	tr.touches(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, canvas, 10, 10)

	evs := tr.touches(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, canvas, 10, 10)

	require.Len(t, evs, 1)
	assert.Equal(t, entity.TouchCancel, evs[0].Action)
	assert.False(t, tr.pressed)
}

func TestPointerTracker_WheelIsPinch(t *testing.T) {
	var tr pointerTracker
	canvas := entity.Size{Width: 1000, Height: 1000}

	evs := tr.touches(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, canvas, 10, 10)

	require.Len(t, evs, 5)
	wantActions := []entity.TouchAction{
		entity.TouchDown, entity.TouchPointerDown, entity.TouchMove, entity.TouchPointerUp, entity.TouchUp,
	}
	for i, ev := range evs {
		assert.Equal(t, wantActions[i], ev.Action)
	}
	start := evs[1].Pointers[0].Distance(evs[1].Pointers[1].Point)
	end := evs[2].Pointers[0].Distance(evs[2].Pointers[1].Point)
	assert.InDelta(t, wheelSpread, start, 1e-9)
	assert.Greater(t, end, start, "wheel up spreads the fingers")

	evs = tr.touches(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, canvas, 10, 10)
	end = evs[2].Pointers[0].Distance(evs[2].Pointers[1].Point)
	assert.Less(t, end, wheelSpread)
}

func TestDispatch_WheelIgnoredWhileAnnotating(t *testing.T) {
	app := newBoard(t)
	app.Annotation().SetMode(true)
	var tr pointerTracker
	wheel := tea.MouseMsg{X: 4, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}

	evs := tr.touches(wheel, app.Frame().Canvas, 10, 10)
	require.NotEmpty(t, evs)
	dispatch(app, evs, isWheel(wheel))

	assert.Zero(t, app.Annotation().Len(), "scrolling does not draw")
	assert.False(t, app.Annotation().Drawing())

	// The same touches from a real finger do draw.
	dispatch(app, evs, false)
	assert.Equal(t, 1, app.Annotation().Len())
}

func TestDispatch_LeftDragDrawsWhileAnnotating(t *testing.T) {
	app := newBoard(t)
	app.Annotation().SetMode(true)
	var tr pointerTracker
	canvas := app.Frame().Canvas

	for _, msg := range []tea.MouseMsg{
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 5, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	} {
		dispatch(app, tr.touches(msg, canvas, 10, 10), isWheel(msg))
	}

	assert.Equal(t, 1, app.Annotation().Len())
}
