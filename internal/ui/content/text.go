package content

import (
	"context"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
)

const (
	keyText     = "text"
	keyFontSize = "fontSize"
)

// Text is an editable note.
type Text struct {
	body     string
	fontSize float64
}

// NewText creates an empty note with a 16pt font.
func NewText() *Text {
	return &Text{fontSize: 16}
}

func (t *Text) Kind() entity.PanelKind { return entity.PanelText }

func (t *Text) DefaultSize() entity.Size { return entity.Size{Width: 320, Height: 240} }

// Body returns the note text.
func (t *Text) Body() string { return t.body }

// SetBody replaces the note text.
func (t *Text) SetBody(s string) { t.body = s }

// FontSize returns the font size in points.
func (t *Text) FontSize() float64 { return t.fontSize }

// SetFontSize sets the font size; values below 6 are raised to 6.
func (t *Text) SetFontSize(size float64) { t.fontSize = max(size, 6) }

func (t *Text) SaveData() entity.CustomData {
	return entity.CustomData{
		keyText:     entity.StringValue(t.body),
		keyFontSize: entity.FloatValue(t.fontSize),
	}
}

func (t *Text) LoadData(ctx context.Context, data entity.CustomData) {
	if v, ok := data.String(keyText); ok {
		t.body = v
	} else if _, present := data[keyText]; present {
		logging.FromContext(ctx).Debug().Str("key", keyText).Msg("ignoring mistyped custom data")
	}
	if v, ok := data.Float(keyFontSize); ok {
		t.SetFontSize(v)
	}
}

func (t *Text) Buttons() []entity.ControlButton {
	return []entity.ControlButton{
		{Icon: "text-larger", Anchor: entity.AnchorBottomEnd, Action: func() { t.SetFontSize(t.fontSize + 2) }},
		{Icon: "text-smaller", Anchor: entity.AnchorBottomEnd, Action: func() { t.SetFontSize(t.fontSize - 2) }},
	}
}
