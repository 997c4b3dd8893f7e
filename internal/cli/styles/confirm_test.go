package styles

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

func testBoard(now time.Time) *entity.WhiteboardState {
	return &entity.WhiteboardState{
		BoardID: "retro",
		SavedAt: now.Add(-5 * time.Minute),
		Panels: []entity.PanelRecord{
			{Kind: entity.PanelText},
			{Kind: entity.PanelImage},
			{Kind: entity.PanelImage},
		},
	}
}

func press(m DeleteDialog, keys ...string) DeleteDialog {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestDescribeBoard(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 panels (2 IMAGE, 1 TEXT) · saved 5m ago", DescribeBoard(testBoard(now), now))
	assert.Equal(t, "empty · saved never", DescribeBoard(&entity.WhiteboardState{}, now))
}

func TestDeleteDialog_DefaultsToKeep(t *testing.T) {
	now := time.Now()
	m := press(NewDeleteDialog(NewPlainTheme(), testBoard(now), now), "enter")

	assert.True(t, m.Done())
	assert.False(t, m.Confirmed())
}

func TestDeleteDialog_Choices(t *testing.T) {
	now := time.Now()
	newDialog := func() DeleteDialog { return NewDeleteDialog(NewPlainTheme(), testBoard(now), now) }

	tests := []struct {
		name      string
		keys      []string
		done      bool
		confirmed bool
	}{
		{"yes then enter", []string{"y", "enter"}, true, true},
		{"toggle then enter", []string{"right", "enter"}, true, true},
		{"toggle twice", []string{"right", "right", "enter"}, true, false},
		{"escape", []string{"y", "esc"}, true, false},
		{"undecided", []string{"y"}, false, false},
		{"keys after answer ignored", []string{"enter", "y", "enter"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newDialog(), tt.keys...)
			assert.Equal(t, tt.done, m.Done())
			assert.Equal(t, tt.confirmed, m.Confirmed())
		})
	}
}

func TestDeleteDialog_ViewShowsBoard(t *testing.T) {
	now := time.Now()
	view := NewDeleteDialog(NewPlainTheme(), testBoard(now), now).View()

	assert.Contains(t, view, `Delete board "retro"?`)
	assert.Contains(t, view, "3 panels")
	assert.Contains(t, view, "Keep")
}
