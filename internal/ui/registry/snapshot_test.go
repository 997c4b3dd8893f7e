package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/ui/content"
	"github.com/bnema/whiteboard/internal/ui/registry"
)

func buildBoard(t *testing.T, f *fixture) {
	t.Helper()

	txt, err := f.reg.Add(f.ctx, entity.PanelText)
	require.NoError(t, err)
	txt.Content.(*content.Text).SetBody("agenda")
	txt.Surface.MoveTo(420, 80, false)

	img, err := f.reg.Add(f.ctx, entity.PanelImage)
	require.NoError(t, err)
	img.Content.(*content.Image).Rotate()
	img.Content.(*content.Image).SetFilter(content.FilterSepia)
	img.Surface.ResizeTo(480, false)

	model, err := f.reg.Add(f.ctx, entity.PanelModel3D)
	require.NoError(t, err)
	m := model.Content.(*content.Model3D)
	m.SetModel(2)
	m.PauseAnimation()
	model.Surface.ZoomTo(1.5, false)

	_, err = f.reg.Add(f.ctx, entity.PanelReadOnly)
	require.NoError(t, err)
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	src := newFixture(t)
	buildBoard(t, src)
	saved := src.reg.Snapshot()
	require.Len(t, saved.Panels, 4)

	dst := newFixture(t)
	_, _ = dst.reg.Add(dst.ctx, entity.PanelMinimal)
	require.NoError(t, dst.reg.Restore(dst.ctx, saved))

	again := dst.reg.Snapshot()
	again.SavedAt = saved.SavedAt
	assert.Equal(t, saved, again)

	panels := dst.reg.Panels()
	require.Len(t, panels, 4)
	assert.Equal(t, "agenda", panels[0].Content.(*content.Text).Body())
	assert.Equal(t, entity.Pt(420, 80), panels[0].Surface.Position())
	assert.Equal(t, entity.Square(480), panels[1].Surface.Size())
	assert.Equal(t, 1.5, panels[2].Surface.Scale())
}

func TestSnapshot_RecordsKindPositionScaleSize(t *testing.T) {
	f := newFixture(t)
	p, err := f.reg.Add(f.ctx, entity.PanelStandard)
	require.NoError(t, err)
	p.Surface.MoveTo(10, 20, false)
	p.Surface.ZoomTo(2, false)

	state := f.reg.Snapshot()

	require.Len(t, state.Panels, 1)
	rec := state.Panels[0]
	assert.Equal(t, entity.PanelStandard, rec.Kind)
	assert.Equal(t, entity.Pt(10, 20), rec.Position)
	assert.Equal(t, 2.0, rec.Scale)
	assert.Equal(t, entity.Square(600), rec.Size)
	assert.Nil(t, rec.Data)
	assert.Equal(t, entity.WhiteboardStateVersion, state.Version)
}

func TestRestore_SkipsUnknownKindsAndDropsUnknownKeys(t *testing.T) {
	f := newFixture(t)
	state := &entity.WhiteboardState{
		Version: entity.WhiteboardStateVersion,
		Panels: []entity.PanelRecord{
			{Kind: entity.PanelText, Position: entity.Pt(0, 100), Scale: 1, Size: entity.Size{Width: 320, Height: 240},
				Data: entity.CustomData{"text": entity.StringValue("kept"), "legacyColor": entity.StringValue("blue")}},
			{Kind: "HOLOGRAM", Position: entity.Pt(5, 5), Scale: 1, Size: entity.Square(300)},
			{Kind: entity.PanelImage, Position: entity.Pt(300, 300), Scale: 1, Size: entity.Square(320),
				Data: entity.CustomData{"imageAlpha": entity.StringValue("oops")}},
		},
	}

	err := f.reg.Restore(f.ctx, state)

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrInvalidPanelKind)
	require.Equal(t, 2, f.reg.Count())

	snap := f.reg.Snapshot()
	assert.Equal(t, entity.PanelText, snap.Panels[0].Kind)
	assert.Equal(t, entity.PanelImage, snap.Panels[1].Kind)
	_, hasLegacy := snap.Panels[0].Data["legacyColor"]
	assert.False(t, hasLegacy, "unknown keys vanish on the next snapshot")
	assert.Equal(t, entity.FloatValue(1), snap.Panels[1].Data["imageAlpha"], "mistyped key keeps its default")
}

func TestRestore_FallsBackToScale(t *testing.T) {
	f := newFixture(t)
	state := &entity.WhiteboardState{
		Panels: []entity.PanelRecord{{Kind: entity.PanelStandard, Position: entity.Pt(0, 0), Scale: 1.5}},
	}

	require.NoError(t, f.reg.Restore(f.ctx, state))

	assert.Equal(t, entity.Square(450), f.reg.Panels()[0].Surface.Size())
}

func TestRestore_StopsAtCapacity(t *testing.T) {
	f := newFixture(t)
	state := &entity.WhiteboardState{}
	for i := 0; i < 10; i++ {
		state.Panels = append(state.Panels, entity.PanelRecord{Kind: entity.PanelMinimal, Position: entity.Pt(0, 0), Scale: 1})
	}

	err := f.reg.Restore(f.ctx, state)

	assert.ErrorIs(t, err, registry.ErrCapacityExceeded)
	assert.Equal(t, 8, f.reg.Count())
}
