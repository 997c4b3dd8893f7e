package replay_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/cli/replay"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
	"github.com/bnema/whiteboard/internal/logging"
	"github.com/bnema/whiteboard/internal/ui"
	"github.com/bnema/whiteboard/internal/ui/event"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newApp(t *testing.T) *ui.App {
	t.Helper()
	app, err := ui.New(&ui.Dependencies{Ctx: testContext(), Config: config.DefaultConfig()})
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func TestLoad_ReadsSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
board = "demo"
save = true

[[step]]
action = "add"
kind = "text"

[[step]]
action = "touch"
touch = "pointer_down"
pointer = 1
pointers = [{ id = 0, x = 1, y = 2 }, { id = 1, x = 3, y = 4 }]
`), 0o644))

	s, err := replay.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "demo", s.Board)
	assert.True(t, s.Save)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, "text", s.Steps[0].Kind)
	assert.Equal(t, []replay.Pointer{{ID: 0, X: 1, Y: 2}, {ID: 1, X: 3, Y: 4}}, s.Steps[1].Pointers)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := replay.Parse(`
[[step]]
action = "add"
colour = "red"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step.colour")
}

func TestParse_SuggestsActions(t *testing.T) {
	_, err := replay.Parse(`
[[step]]
action = "dragg"
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, replay.ErrUnknownAction)
	assert.Contains(t, err.Error(), `did you mean "drag"`)
}

func TestParse_SaveNeedsBoard(t *testing.T) {
	_, err := replay.Parse("save = true\n")
	assert.Error(t, err)
}

func TestParseKind_Suggestion(t *testing.T) {
	kind, err := replay.ParseKind("image")
	require.NoError(t, err)
	assert.Equal(t, entity.PanelImage, kind)

	_, err = replay.ParseKind("IMAGF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "IMAGE"`)

	_, err = replay.ParseKind("spreadsheet")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRun_DragAndAnnotate(t *testing.T) {
	app := newApp(t)
	s, err := replay.Parse(`
[[step]]
action = "add"

[[step]]
action = "drag"
x = 150
y = 250
to_x = 250
to_y = 250

[[step]]
action = "annotate"
on = true

[[step]]
action = "tool"
tool = "line"

[[step]]
action = "touch"
touch = "down"
x = 10
y = 600

[[step]]
action = "touch"
touch = "move"
x = 90
y = 600

[[step]]
action = "touch"
touch = "up"
x = 90
y = 600
`)
	require.NoError(t, err)

	start := time.Unix(1000, 0)
	report, err := replay.Run(testContext(), app, s, start)

	require.NoError(t, err)
	assert.Equal(t, 7, report.Steps)
	assert.Empty(t, report.Errors)
	require.Len(t, report.Final.Panels, 1)
	assert.Equal(t, entity.RectXYWH(100, 100, 300, 300), report.Final.Panels[0].Bounds)
	require.Len(t, report.Final.Strokes, 1)
	assert.Equal(t, entity.ShapeSegment, report.Final.Strokes[0].Shape.Kind)
	assert.Equal(t, 1, report.Events[event.PanelAdded])
	assert.True(t, report.Clock.After(start))
}

func TestRun_PinchGrowsPanel(t *testing.T) {
	app := newApp(t)
	s, err := replay.Parse(`
[[step]]
action = "add"

[[step]]
action = "toggle_resize"

[[step]]
action = "pinch"
x = 150
y = 250
from = 100
to = 160
`)
	require.NoError(t, err)

	report, err := replay.Run(testContext(), app, s, time.Unix(0, 0))

	require.NoError(t, err)
	require.Len(t, report.Final.Panels, 1)
	assert.Greater(t, report.Final.Panels[0].Bounds.Width(), 300.0)
	assert.Positive(t, report.Events[event.PanelResized])
}

func TestRun_StepErrorsDoNotStop(t *testing.T) {
	app := newApp(t)
	s, err := replay.Parse(`
[[step]]
action = "remove"
index = 3

[[step]]
action = "add"
kind = "minimal"

[[step]]
action = "remove"
index = -1
`)
	require.NoError(t, err)

	report, err := replay.Run(testContext(), app, s, time.Unix(0, 0))

	require.NoError(t, err)
	assert.Equal(t, 3, report.Steps)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Error(), "no panel at index 3")
	assert.Empty(t, report.Final.Panels)
	assert.Equal(t, 1, report.Events[event.PanelRemoved])
}
