package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/whiteboard/internal/domain/build"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
)

func TestNewAboutSetup(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Autosave.Enabled = true
	cfg.Autosave.Board = "lesson"
	cfg.Autosave.DebounceMs = 750
	cfg.Logging.EnableFileLog = false

	s := NewAboutSetup(cfg, "/etc/wb/config.toml", "/var/wb/whiteboard.sqlite")

	assert.Equal(t, "/etc/wb/config.toml", s.ConfigFile)
	assert.Equal(t, "/var/wb/whiteboard.sqlite", s.Database)
	assert.Empty(t, s.LogDir)
	assert.Equal(t, cfg.Panels.MaxPanels, s.MaxPanels)
	assert.Equal(t, `board "lesson", 750ms after the last change`, s.Autosave)

	cfg.Autosave.Enabled = false
	assert.Equal(t, "off", NewAboutSetup(cfg, "", "").Autosave)
}

func TestAboutRenderer_PlainShowsSetup(t *testing.T) {
	setup := AboutSetup{ConfigFile: "/etc/wb/config.toml", Database: "/var/wb/whiteboard.sqlite", MaxPanels: 8, PanelKind: "TEXT", Autosave: "off"}

	out := NewAboutRenderer(NewPlainTheme()).Render(build.Info{Version: "v1.2.0"}, setup)

	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "/etc/wb/config.toml")
	assert.Contains(t, out, "/var/wb/whiteboard.sqlite")
	assert.Contains(t, out, "terminal only")
	assert.Contains(t, out, "up to 8, new ones are TEXT")
	assert.NotContains(t, out, "██", "no logo without a terminal")
}
