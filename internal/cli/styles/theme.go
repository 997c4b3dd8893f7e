// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/whiteboard/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from Palette)
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color
	Ink     lipgloss.Color

	// Plain disables every style.
	Plain bool

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Component styles
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Canvas styles
	PanelBorder       lipgloss.Style
	PanelBorderActive lipgloss.Style
	PanelLabel        lipgloss.Style
	Button            lipgloss.Style
	Stroke            lipgloss.Style
	Scratch           lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// Palette is the set of base colors a Theme is built from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
}

// DefaultDarkPalette returns hardcoded dark theme colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// NewTheme creates a Theme from config. The annotation color doubles as
// the ink color of the canvas view.
func NewTheme(cfg *config.Config) *Theme {
	t := NewThemeFromPalette(DefaultDarkPalette())
	if cfg != nil && cfg.Annotation.Color != "" {
		t.Ink = lipgloss.Color(cfg.Annotation.Color)
		t.buildStyles()
	}
	return t
}

// NewPlainTheme creates a Theme without colors or borders, for output that
// is not a terminal.
func NewPlainTheme() *Theme {
	t := NewThemeFromPalette(DefaultDarkPalette())
	t.Plain = true
	t.buildStyles()
	return t
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(p.Accent),
		Ink:     lipgloss.Color("#FF0000"),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	if t.Plain {
		t.buildPlainStyles()
		return
	}

	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	// Tab styles
	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	// Badge styles
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	t.PanelBorder = lipgloss.NewStyle().Foreground(t.Muted)
	t.PanelBorderActive = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.PanelLabel = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Button = lipgloss.NewStyle().Foreground(t.Warning)
	t.Stroke = lipgloss.NewStyle().Foreground(t.Ink)
	t.Scratch = lipgloss.NewStyle().Foreground(t.Ink).Faint(true)
}

func (t *Theme) buildPlainStyles() {
	plain := lipgloss.NewStyle()
	for _, s := range []*lipgloss.Style{
		&t.Title, &t.Subtitle, &t.Normal, &t.Subtle, &t.Highlight,
		&t.ErrorStyle, &t.WarningStyle, &t.SuccessStyle,
		&t.ActiveTab, &t.InactiveTab, &t.Badge, &t.BadgeMuted,
		&t.HelpKey, &t.HelpDesc, &t.Box, &t.BoxHeader,
		&t.PanelBorder, &t.PanelBorderActive, &t.PanelLabel, &t.Button, &t.Stroke, &t.Scratch,
	} {
		*s = plain
	}
	t.ActiveTab = plain.Reverse(true)
}
