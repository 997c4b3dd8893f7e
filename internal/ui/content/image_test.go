package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/ui/content"
)

func TestImage_RotateWraps(t *testing.T) {
	img := content.NewImage()
	for i := 0; i < 5; i++ {
		img.Rotate()
	}
	assert.Equal(t, 90, img.Rotation())
}

func TestImage_AlphaClamped(t *testing.T) {
	img := content.NewImage()
	img.SetAlpha(1.7)
	assert.Equal(t, 1.0, img.Alpha())
	img.SetAlpha(-3)
	assert.Equal(t, 0.0, img.Alpha())
}

func TestImage_SourceIsExclusive(t *testing.T) {
	img := content.NewImage()
	img.SetPath("/tmp/a.png")
	img.SetResource(12)

	res, path := img.Source()
	assert.Equal(t, 12, res)
	assert.Empty(t, path)
}

func TestImage_SaveLoadRoundTrip(t *testing.T) {
	img := content.NewImage()
	img.SetPath("/data/cat.jpg")
	img.Rotate()
	img.SetAlpha(0.4)
	img.SetFilter(content.FilterVintage)
	img.SetTint(0x7f00ff00)

	restored := content.NewImage()
	restored.LoadData(context.Background(), img.SaveData())

	assert.Equal(t, img.SaveData(), restored.SaveData())
	assert.Equal(t, content.FilterVintage, restored.Filter())
}

func TestImage_LoadKeepsDefaultsOnBadData(t *testing.T) {
	img := content.NewImage()
	img.LoadData(context.Background(), entity.CustomData{
		"imageFilter": entity.StringValue("POSTERIZE"),
		"imageAlpha":  entity.StringValue("half"),
		"imageTint":   entity.FloatValue(3.5),
		"unknownKey":  entity.BoolValue(true),
	})

	assert.Equal(t, content.FilterNone, img.Filter())
	assert.Equal(t, 1.0, img.Alpha())
	assert.Equal(t, content.NoResource, img.Tint())
	_, hasUnknown := img.SaveData()["unknownKey"]
	assert.False(t, hasUnknown)
}

func TestFilter_Matrices(t *testing.T) {
	r, g, b, a := content.FilterGrayscale.Matrix().Apply(255, 0, 0, 255)
	assert.InDelta(t, 0.213*255, r, 1e-6)
	assert.InDelta(t, r, g, 1e-6)
	assert.InDelta(t, r, b, 1e-6)
	assert.Equal(t, 255.0, a)

	// Sepia of white: each row sums its sepia coefficients.
	r, g, b, _ = content.FilterSepia.Matrix().Apply(100, 100, 100, 255)
	assert.InDelta(t, 135.1, r, 1e-6)
	assert.InDelta(t, 120.3, g, 1e-6)
	assert.InDelta(t, 93.7, b, 1e-6)

	r, _, _, _ = content.FilterBrightness.Matrix().Apply(250, 0, 0, 255)
	assert.Equal(t, 255.0, r, "clamped")

	r, _, _, _ = content.FilterNone.Matrix().Apply(42, 0, 0, 255)
	assert.Equal(t, 42.0, r)
}

func TestImage_CycleFilter(t *testing.T) {
	img := content.NewImage()
	seen := map[content.Filter]bool{}
	for range content.AllFilters() {
		seen[img.Filter()] = true
		img.CycleFilter()
	}
	assert.Len(t, seen, len(content.AllFilters()))
	assert.Equal(t, content.FilterNone, img.Filter())
}

func TestFactory_New(t *testing.T) {
	f := content.Factory{}
	for _, kind := range entity.AllPanelKinds() {
		c, err := f.New(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, c.Kind())
		assert.Positive(t, c.DefaultSize().Width)
	}

	_, err := f.New("HOLOGRAM")
	assert.Error(t, err)
}

func TestText_SaveLoad(t *testing.T) {
	txt := content.NewText()
	txt.SetBody("hello")
	txt.SetFontSize(2)
	assert.Equal(t, 6.0, txt.FontSize())

	restored := content.NewText()
	restored.LoadData(context.Background(), txt.SaveData())
	assert.Equal(t, "hello", restored.Body())
	assert.Equal(t, 6.0, restored.FontSize())
}
