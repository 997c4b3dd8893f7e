package styles

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// BoardsRenderer renders saved boards.
type BoardsRenderer struct {
	theme *Theme
	now   func() time.Time
}

// NewBoardsRenderer creates a new BoardsRenderer.
func NewBoardsRenderer(theme *Theme) *BoardsRenderer {
	return &BoardsRenderer{theme: theme, now: time.Now}
}

// RenderList renders the saved boards as a table.
func (r *BoardsRenderer) RenderList(boards []BoardRow) string {
	if len(boards) == 0 {
		return r.theme.Subtle.Render("No saved boards yet. Run 'whiteboard play' to create one.")
	}

	now := r.now()
	rows := make([]table.Row, 0, len(boards))
	for _, b := range boards {
		rows = append(rows, b.ToRow(now))
	}

	t := NewStyledTable(r.theme, BoardTableColumns(), rows, 90, len(rows)+1)
	t.Blur()
	header := fmt.Sprintf("%s %s", r.icon(IconBoard), r.theme.Title.Render(fmt.Sprintf("%d saved boards", len(boards))))
	return header + "\n\n" + t.View()
}

// RenderBoard renders one board with its panels.
func (r *BoardsRenderer) RenderBoard(state *entity.WhiteboardState) string {
	header := fmt.Sprintf("%s %s  %s",
		r.icon(IconBoard),
		r.theme.Title.Render(string(state.BoardID)),
		r.theme.Subtle.Render(fmt.Sprintf("v%d · saved %s", state.Version, FormatAge(r.now(), state.SavedAt))),
	)
	if len(state.Panels) == 0 {
		return header + "\n\n" + r.theme.Subtle.Render("Board is empty")
	}

	rows := make([]table.Row, 0, len(state.Panels))
	for i, p := range state.Panels {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			string(p.Kind),
			fmt.Sprintf("%.0f,%.0f", p.Position.X, p.Position.Y),
			fmt.Sprintf("%dx%d", p.Size.Width, p.Size.Height),
			strconv.FormatFloat(p.Scale, 'f', 2, 64),
			formatData(p.Data),
		})
	}
	t := NewStyledTable(r.theme, PanelTableColumns(), rows, 90, len(rows)+1)
	t.Blur()
	return header + "\n\n" + t.View()
}

func formatData(data entity.CustomData) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+data[k].String())
	}
	return strings.Join(parts, " ")
}

// RenderSaved confirms a write.
func (r *BoardsRenderer) RenderSaved(id entity.BoardID, panels int, path string) string {
	msg := fmt.Sprintf("Saved board %s (%d panels)", id, panels)
	if path != "" {
		msg += " to " + path
	}
	return fmt.Sprintf("%s %s", r.styledIcon(IconCheck, r.theme.Success), r.theme.Normal.Render(msg))
}

// RenderDeleted confirms a deletion.
func (r *BoardsRenderer) RenderDeleted(id entity.BoardID) string {
	return fmt.Sprintf("%s %s", r.styledIcon(IconTrash, r.theme.Success), r.theme.Normal.Render("Deleted board "+string(id)))
}

// RenderError renders an error message.
func (r *BoardsRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.styledIcon(IconX, r.theme.Error), r.theme.ErrorStyle.Render(err.Error()))
}

func (r *BoardsRenderer) icon(icon string) string {
	return r.styledIcon(icon, r.theme.Accent)
}

func (r *BoardsRenderer) styledIcon(icon string, c lipgloss.Color) string {
	if r.theme.Plain {
		return ""
	}
	return lipgloss.NewStyle().Foreground(c).Render(icon)
}
