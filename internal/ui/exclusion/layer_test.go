package exclusion_test

import (
	"testing"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/ui/exclusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayer_AnchorsRectsAtCorners(t *testing.T) {
	l := exclusion.New(exclusion.DefaultMetrics())
	l.Resize(entity.Square(300))

	l.Add(entity.ControlButton{Icon: "close", Anchor: entity.AnchorTopEnd})
	l.Add(entity.ControlButton{Icon: "menu", Anchor: entity.AnchorTopStart})
	l.Add(entity.ControlButton{Icon: "rotate", Anchor: entity.AnchorBottomEnd})
	l.Add(entity.ControlButton{Icon: "info", Anchor: entity.AnchorBottomStart})

	rects := l.Rects()
	require.Len(t, rects, 4)
	assert.Equal(t, entity.RectXYWH(260, 0, 40, 40), rects[0])
	assert.Equal(t, entity.RectXYWH(0, 0, 40, 40), rects[1])
	assert.Equal(t, entity.RectXYWH(260, 260, 40, 40), rects[2])
	assert.Equal(t, entity.RectXYWH(0, 260, 40, 40), rects[3])
}

func TestLayer_StacksSameAnchor(t *testing.T) {
	l := exclusion.New(exclusion.DefaultMetrics())
	l.Resize(entity.Square(300))

	first := l.Add(entity.ControlButton{Icon: "a", Anchor: entity.AnchorTopEnd})
	second := l.Add(entity.ControlButton{Icon: "b", Anchor: entity.AnchorTopEnd})
	third := l.Add(entity.ControlButton{Icon: "c", Anchor: entity.AnchorBottomEnd})
	fourth := l.Add(entity.ControlButton{Icon: "d", Anchor: entity.AnchorBottomEnd})

	assert.Equal(t, 0, first.StackIndex)
	assert.Equal(t, 1, second.StackIndex)
	assert.Equal(t, 0, third.StackIndex)

	rects := l.Rects()
	assert.Equal(t, entity.RectXYWH(260, 28, 40, 40), rects[1])
	assert.Equal(t, entity.RectXYWH(260, 232, 40, 40), rects[3])
	assert.Equal(t, 1, fourth.StackIndex)
}

func TestLayer_CenterAnchors(t *testing.T) {
	l := exclusion.New(exclusion.DefaultMetrics())
	l.Resize(entity.Size{Width: 400, Height: 200})

	l.Add(entity.ControlButton{Icon: "up", Anchor: entity.AnchorTopCenter})
	l.Add(entity.ControlButton{Icon: "right", Anchor: entity.AnchorCenterEnd})

	rects := l.Rects()
	assert.Equal(t, entity.RectXYWH(180, 0, 40, 40), rects[0])
	assert.Equal(t, entity.RectXYWH(360, 80, 40, 40), rects[1])
}

func TestLayer_RecomputesOnResize(t *testing.T) {
	l := exclusion.New(exclusion.DefaultMetrics())
	l.Resize(entity.Square(300))
	l.Add(entity.ControlButton{Icon: "close", Anchor: entity.AnchorTopEnd})

	l.Resize(entity.Square(500))

	assert.Equal(t, entity.RectXYWH(460, 0, 40, 40), l.Rects()[0])
	assert.True(t, l.Contains(entity.Pt(470, 10)))
	assert.False(t, l.Contains(entity.Pt(270, 10)))
}

func TestLayer_FootprintIsInsetByHalfPadding(t *testing.T) {
	l := exclusion.New(exclusion.DefaultMetrics())
	l.Resize(entity.Square(300))
	l.Add(entity.ControlButton{Icon: "close", Anchor: entity.AnchorTopEnd})

	p := l.Placements()[0]
	assert.Equal(t, entity.RectXYWH(268, 8, 24, 24), p.Footprint)
}

func TestLayer_ButtonAtAndRemove(t *testing.T) {
	l := exclusion.New(exclusion.DefaultMetrics())
	l.Resize(entity.Square(300))
	l.Add(entity.ControlButton{Icon: "a", Anchor: entity.AnchorTopEnd})
	l.Add(entity.ControlButton{Icon: "b", Anchor: entity.AnchorTopEnd})

	b, ok := l.ButtonAt(entity.Pt(280, 60))
	require.True(t, ok)
	assert.Equal(t, "b", b.Icon)

	assert.True(t, l.Remove("a"))
	assert.False(t, l.Remove("a"))

	b, ok = l.ButtonAt(entity.Pt(280, 10))
	require.True(t, ok)
	assert.Equal(t, "b", b.Icon)
	assert.Equal(t, 0, b.StackIndex)
}

func TestLayer_ContentInsets(t *testing.T) {
	l := exclusion.New(exclusion.DefaultMetrics())
	top, bottom := l.ContentInsets()
	assert.Equal(t, 8.0, top)
	assert.Equal(t, 8.0, bottom)

	l.Add(entity.ControlButton{Icon: "close", Anchor: entity.AnchorTopEnd})
	top, bottom = l.ContentInsets()
	assert.Equal(t, 40.0, top)
	assert.Equal(t, 8.0, bottom)
}
