package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// BoardKeyMap defines keybindings for the interactive board.
type BoardKeyMap struct {
	Add        key.Binding
	AddKind    key.Binding
	Annotate   key.Binding
	Tool       key.Binding
	Undo       key.Binding
	Clear      key.Binding
	Grid       key.Binding
	Zoom       key.Binding
	Reset      key.Binding
	ToggleDrag key.Binding
	ToggleSize key.Binding
	Remove     key.Binding
	Save       key.Binding
	Restore    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Annotate, k.Tool, k.Save, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.AddKind, k.Remove},
		{k.Annotate, k.Tool, k.Undo, k.Clear},
		{k.Grid, k.Zoom, k.Reset, k.ToggleDrag, k.ToggleSize},
		{k.Save, k.Restore, k.Help, k.Quit},
	}
}

// DefaultBoardKeyMap returns the default board keybindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add panel"),
		),
		AddKind: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "add panel of kind"),
		),
		Annotate: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "annotate"),
		),
		Tool: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next tool"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo stroke"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear strokes"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid"),
		),
		Zoom: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "zoom all"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset all"),
		),
		ToggleDrag: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle drag"),
		),
		ToggleSize: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle resize"),
		),
		Remove: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "remove top panel"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "save"),
		),
		Restore: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "restore"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a help model with theme styling.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	if theme.Plain {
		return h
	}
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
