package styles

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// DeleteKeyMap defines keybindings for the board delete dialog.
type DeleteKeyMap struct {
	Toggle  key.Binding
	Yes     key.Binding
	No      key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k DeleteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k DeleteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No, k.Toggle}, {k.Confirm, k.Cancel}}
}

// DefaultDeleteKeyMap returns the default keybindings.
func DefaultDeleteKeyMap() DeleteKeyMap {
	return DeleteKeyMap{
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "choose")),
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "delete")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "keep board")),
	}
}

// DeleteDialog asks before a saved board is deleted. It starts on "Keep".
type DeleteDialog struct {
	board    *entity.WhiteboardState
	now      time.Time
	keys     DeleteKeyMap
	help     help.Model
	theme    *Theme
	delete   bool
	decided  bool
	canceled bool
}

// NewDeleteDialog creates a dialog describing the board about to go.
func NewDeleteDialog(theme *Theme, board *entity.WhiteboardState, now time.Time) DeleteDialog {
	return DeleteDialog{
		board: board,
		now:   now,
		keys:  DefaultDeleteKeyMap(),
		help:  NewStyledHelp(theme),
		theme: theme,
	}
}

// Update handles key presses. It never returns a command.
func (m DeleteDialog) Update(msg tea.Msg) (DeleteDialog, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Yes):
		m.delete = true
	case key.Matches(km, m.keys.No):
		m.delete = false
	case key.Matches(km, m.keys.Toggle):
		m.delete = !m.delete
	case key.Matches(km, m.keys.Confirm):
		m.decided = true
	case key.Matches(km, m.keys.Cancel):
		m.canceled = true
	}
	return m, nil
}

// View renders the board summary, the choice and key help.
func (m DeleteDialog) View() string {
	t := m.theme

	keep, del := t.ActiveTab, t.InactiveTab
	if m.delete {
		keep, del = t.InactiveTab, t.ActiveTab.Background(t.Error)
		if t.Plain {
			del = t.ActiveTab
		}
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, keep.Render(" Keep "), "  ", del.Render(" Delete "))

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(fmt.Sprintf("Delete board %q?", m.board.BoardID)),
		t.Subtle.Render(DescribeBoard(m.board, m.now)),
		t.WarningStyle.Render("Panels and their content are removed for good."),
		"",
		buttons,
		"",
		m.help.View(m.keys),
	)
	return t.Box.Render(body)
}

// Done reports whether the user answered.
func (m DeleteDialog) Done() bool { return m.decided || m.canceled }

// Confirmed reports whether the user chose to delete.
func (m DeleteDialog) Confirmed() bool { return m.decided && m.delete }

// DescribeBoard summarizes a board in one line, e.g.
// "3 panels (2 IMAGE, 1 TEXT) · saved 5m ago".
func DescribeBoard(b *entity.WhiteboardState, now time.Time) string {
	if len(b.Panels) == 0 {
		return "empty · saved " + FormatAge(now, b.SavedAt)
	}
	counts := map[entity.PanelKind]int{}
	for _, p := range b.Panels {
		counts[p.Kind]++
	}
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, string(k))
	}
	sort.Strings(names)
	kinds := make([]string, len(names))
	for i, k := range names {
		kinds[i] = fmt.Sprintf("%d %s", counts[entity.PanelKind(k)], k)
	}

	noun := "panels"
	if len(b.Panels) == 1 {
		noun = "panel"
	}
	return fmt.Sprintf("%d %s (%s) · saved %s", len(b.Panels), noun, strings.Join(kinds, ", "), FormatAge(now, b.SavedAt))
}
