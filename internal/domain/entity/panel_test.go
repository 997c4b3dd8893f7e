package entity_test

import (
	"testing"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePanelKind(t *testing.T) {
	tests := []struct {
		in   string
		want entity.PanelKind
	}{
		{"TEXT", entity.PanelText},
		{"model_3d", entity.PanelModel3D},
		{"3d", entity.PanelModel3D},
		{"read-only", entity.PanelReadOnly},
		{" image ", entity.PanelImage},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := entity.ParsePanelKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := entity.ParsePanelKind("hologram")
	assert.Error(t, err)
}

func TestNewPanelID_Unique(t *testing.T) {
	a := entity.NewPanelID()
	b := entity.NewPanelID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a.Short(), 8)
}

func TestParseTool(t *testing.T) {
	tool, err := entity.ParseTool("FreeDraw")
	require.NoError(t, err)
	assert.Equal(t, entity.ToolFreeDraw, tool)

	tool, err = entity.ParseTool("arrow")
	require.NoError(t, err)
	assert.Equal(t, entity.ToolArrow, tool)

	_, err = entity.ParseTool("lasso")
	assert.Error(t, err)
}

func TestRect_ContainsAndNormalize(t *testing.T) {
	r := entity.NormalizedRect(entity.Pt(50, 60), entity.Pt(10, 20))
	assert.Equal(t, entity.Rect{Left: 10, Top: 20, Right: 50, Bottom: 60}, r)
	assert.True(t, r.Contains(entity.Pt(10, 20)))
	assert.False(t, r.Contains(entity.Pt(50, 60)))
	assert.InDelta(t, 5.0, entity.Pt(0, 0).Distance(entity.Pt(3, 4)), 1e-9)
}
