package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	m, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	return m, dir
}

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestLoad_WritesDefaultsOnFirstRun(t *testing.T) {
	m, dir := newTestManager(t)

	require.NoError(t, m.Load())

	_, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, 8, cfg.Panels.MaxPanels)
	assert.Equal(t, "STANDARD", cfg.Panels.DefaultKind)
	assert.Equal(t, filepath.Join(dir, "whiteboard.sqlite"), cfg.Database.Path)
}

func TestLoad_ReadsFileAndNormalizes(t *testing.T) {
	m, dir := newTestManager(t)
	content := `
[panels]
default_kind = "read-only"

[annotation]
color = "#00ff00"
default_tool = "Arrow"

[logging]
level = "DEBUG"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "READ_ONLY", cfg.Panels.DefaultKind)
	assert.Equal(t, "#00FF00", cfg.Annotation.Color)
	assert.Equal(t, "arrow", cfg.Annotation.DefaultTool)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 10.0, cfg.Gesture.DragSlop, "missing keys keep defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WHITEBOARD_GESTURE_DRAG_SLOP", "25")
	t.Setenv("WHITEBOARD_LOG_LEVEL", "warn")
	m, _ := newTestManager(t)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 25.0, cfg.Gesture.DragSlop)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	m, dir := newTestManager(t)
	content := `
[panels]
max_panels = 0

[annotation]
color = "red"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	err := m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panels.max_panels")
	assert.Contains(t, err.Error(), "annotation.color")
}

func TestValidate_AutosaveNeedsBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Autosave.Board = ""

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "autosave.board")

	cfg.Autosave.Enabled = false
	cfg.Autosave.RestoreOnStart = false
	assert.NoError(t, validateConfig(cfg))
}

func TestSave_RoundTrips(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Panels.GridColumns = 3
	cfg.Annotation.StartEnabled = true
	require.NoError(t, m.Save(cfg))

	reloaded, err := NewManagerWithDir(filepath.Dir(m.GetConfigFile()))
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 3, reloaded.Get().Panels.GridColumns)
	assert.True(t, reloaded.Get().Annotation.StartEnabled)
}

func TestSave_RejectsInvalid(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Gesture.VisibleFraction = 2

	assert.Error(t, m.Save(cfg))
	assert.Equal(t, 0.2, m.Get().Gesture.VisibleFraction)
}

func TestGet_ReturnsCopy(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Panels.MaxPanels = 1

	assert.Equal(t, 8, m.Get().Panels.MaxPanels)
}
