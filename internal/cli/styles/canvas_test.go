package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/ui"
)

func TestCanvasRenderer_DrawsPanelAndStroke(t *testing.T) {
	r := NewCanvasRenderer(NewPlainTheme())
	frame := ui.Frame{
		Canvas: entity.Size{Width: 400, Height: 200},
		Panels: []ui.PanelView{{
			ID:     "abcdef123456",
			Kind:   entity.PanelText,
			Bounds: entity.RectXYWH(0, 0, 200, 100),
			Drag:   true,
			Buttons: []ui.ButtonView{
				{Icon: "close", Bounds: entity.RectXYWH(180, 0, 20, 20)},
			},
		}},
		Strokes: []entity.Stroke{{
			Shape: entity.Shape{Kind: entity.ShapeSegment, Start: entity.Pt(250, 150), End: entity.Pt(390, 150)},
		}},
	}

	out := r.Render(frame, 40, 20)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 20)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "TEXT abcdef12")
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[1], " "), "×"))
	assert.True(t, strings.HasPrefix(lines[9], "└"))
	assert.Contains(t, lines[15], "•••")
}

func TestCanvasRenderer_EmptySize(t *testing.T) {
	assert.Empty(t, NewCanvasRenderer(NewPlainTheme()).Render(ui.Frame{}, 0, 10))
}

func TestCellToCanvas(t *testing.T) {
	canvas := entity.Size{Width: 1600, Height: 1000}

	p := CellToCanvas(canvas, 160, 50, 10, 5)

	assert.Equal(t, entity.Pt(105, 110), p)
}
