package content

import (
	"context"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// Basic is the content of the generic panel kinds. It has no state.
type Basic struct {
	kind entity.PanelKind
}

// NewBasic creates content for Standard, Minimal or ReadOnly panels.
func NewBasic(kind entity.PanelKind) *Basic {
	return &Basic{kind: kind}
}

func (b *Basic) Kind() entity.PanelKind { return b.kind }

func (b *Basic) DefaultSize() entity.Size {
	switch b.kind {
	case entity.PanelMinimal:
		return entity.Square(240)
	default:
		return entity.Square(300)
	}
}

func (b *Basic) SaveData() entity.CustomData { return nil }

func (b *Basic) LoadData(context.Context, entity.CustomData) {}

func (b *Basic) Buttons() []entity.ControlButton { return nil }
