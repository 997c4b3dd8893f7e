package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "never"},
		{"seconds", now.Add(-20 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-48 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAge(now, tt.t))
		})
	}
}

func TestBoardRow_ToRow(t *testing.T) {
	now := time.Now()
	row := BoardRow{
		ID:         "retro",
		PanelCount: 3,
		ByKind:     map[string]int{"TEXT": 1, "IMAGE": 2},
		SavedAt:    now,
		Version:    1,
	}.ToRow(now)

	assert.Equal(t, "retro", row[0])
	assert.Equal(t, "3", row[1])
	assert.Equal(t, "IMAGE×2 TEXT×1", row[2])
	assert.Equal(t, "just now", row[3])
	assert.Equal(t, "1", row[4])
}
