package styles

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// BoardTableColumns returns columns for the saved boards table.
func BoardTableColumns() []table.Column {
	return []table.Column{
		{Title: "Board", Width: 24},
		{Title: "Panels", Width: 8},
		{Title: "Kinds", Width: 36},
		{Title: "Saved", Width: 12},
		{Title: "Ver", Width: 4},
	}
}

// PanelTableColumns returns columns for the panels of one board.
func PanelTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Kind", Width: 10},
		{Title: "Position", Width: 14},
		{Title: "Size", Width: 10},
		{Title: "Scale", Width: 6},
		{Title: "Data", Width: 40},
	}
}

// BoardRow is one saved board in the boards table.
type BoardRow struct {
	ID         string
	PanelCount int
	ByKind     map[string]int
	SavedAt    time.Time
	Version    int
}

// ToRow converts to table.Row.
func (b BoardRow) ToRow(now time.Time) table.Row {
	return table.Row{
		b.ID,
		strconv.Itoa(b.PanelCount),
		formatKinds(b.ByKind),
		FormatAge(now, b.SavedAt),
		strconv.Itoa(b.Version),
	}
}

// formatKinds renders counts as "IMAGE×2 TEXT×1", sorted by kind.
func formatKinds(byKind map[string]int) string {
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s×%d", k, byKind[k]))
	}
	return strings.Join(parts, " ")
}

// FormatAge renders how long ago t was, e.g. "5m ago".
func FormatAge(now, t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("2006-01-02")
	}
}
