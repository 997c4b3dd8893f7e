package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/whiteboard/internal/domain/build"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
)

// AboutSetup is the local installation shown under the build info.
type AboutSetup struct {
	ConfigFile string
	Database   string
	LogDir     string // empty when file logging is off
	MaxPanels  int
	PanelKind  string
	Autosave   string
}

// NewAboutSetup describes an installation from its loaded config.
func NewAboutSetup(cfg *config.Config, configFile, database string) AboutSetup {
	s := AboutSetup{
		ConfigFile: configFile,
		Database:   database,
		MaxPanels:  cfg.Panels.MaxPanels,
		PanelKind:  cfg.Panels.DefaultKind,
		Autosave:   "off",
	}
	if cfg.Logging.EnableFileLog {
		s.LogDir = cfg.Logging.LogDir
	}
	if cfg.Autosave.Enabled && cfg.Autosave.Board != "" {
		s.Autosave = fmt.Sprintf("board %q, %dms after the last change", cfg.Autosave.Board, cfg.Autosave.DebounceMs)
	}
	return s
}

// AboutRenderer renders build info and the local setup next to a logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders the logo, build info and setup side by side.
func (r *AboutRenderer) Render(info build.Info, setup AboutSetup) string {
	sections := []string{r.buildLines(info), r.setupLines(setup), r.creditLines()}
	lines := strings.Join(sections, "\n\n")
	if r.theme.Plain {
		return lines
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", lines)
}

func (r *AboutRenderer) renderLogo() string {
	logo := `██     ██
██     ██
██  █  ██
██ ███ ██
 ██▀ ▀██`
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) line(icon, label, value string) string {
	var prefix string
	if !r.theme.Plain {
		prefix = lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon) + " "
	}
	return fmt.Sprintf("%s%s %s", prefix, r.theme.Subtle.Render(fmt.Sprintf("%-9s", label)), r.theme.Highlight.Render(value))
}

func (r *AboutRenderer) buildLines(info build.Info) string {
	return strings.Join([]string{
		r.line(IconVersion, "Version", info.Version),
		r.line(IconGitBranch, "Commit", info.Commit),
		r.line(IconCalendar, "Built", info.BuildDate),
		r.line(IconGo, "Go", info.GoVersion),
	}, "\n")
}

func (r *AboutRenderer) setupLines(s AboutSetup) string {
	logs := s.LogDir
	if logs == "" {
		logs = "terminal only"
	}
	return strings.Join([]string{
		r.line(IconConfig, "Config", orUnknown(s.ConfigFile)),
		r.line(IconDatabase, "Boards", orUnknown(s.Database)),
		r.line(IconFolder, "Logs", logs),
		r.line(IconPanel, "Panels", fmt.Sprintf("up to %d, new ones are %s", s.MaxPanels, s.PanelKind)),
		r.line(IconRestore, "Autosave", s.Autosave),
	}, "\n")
}

func (r *AboutRenderer) creditLines() string {
	return strings.Join([]string{
		r.line(IconGithub, "Source", build.RepoURL()),
		r.line(IconHeart, "Authors", strings.Join(build.Contributors(), ", ")),
	}, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
