// Package content implements the kind-specific part of each panel: its
// default size, persisted custom data and control buttons.
package content

import (
	"context"
	"fmt"

	"github.com/bnema/whiteboard/internal/application/port"
	"github.com/bnema/whiteboard/internal/domain/entity"
)

// Content is the capability every panel kind provides.
type Content interface {
	Kind() entity.PanelKind
	DefaultSize() entity.Size
	// SaveData returns the state to persist. Keys are kind specific.
	SaveData() entity.CustomData
	// LoadData applies persisted state. Missing keys and keys holding the
	// wrong type keep their current values.
	LoadData(ctx context.Context, data entity.CustomData)
	// Buttons returns the kind-specific control buttons.
	Buttons() []entity.ControlButton
}

// RenderPauser is implemented by content whose rendering is expensive
// enough to suspend while the user is annotating.
type RenderPauser interface {
	PauseRendering()
	ResumeRendering()
}

// Factory creates content for a panel kind.
type Factory struct {
	// Scheduler drives 3D frame production. Nil means frames are not
	// driven externally.
	Scheduler func() port.FrameScheduler
}

// New creates default content for kind.
func (f Factory) New(kind entity.PanelKind) (Content, error) {
	switch kind {
	case entity.PanelText:
		return NewText(), nil
	case entity.PanelModel3D:
		var sched port.FrameScheduler
		if f.Scheduler != nil {
			sched = f.Scheduler()
		}
		return NewModel3D(sched), nil
	case entity.PanelImage:
		return NewImage(), nil
	case entity.PanelStandard, entity.PanelMinimal, entity.PanelReadOnly:
		return NewBasic(kind), nil
	default:
		return nil, fmt.Errorf("no content for panel kind %q", kind)
	}
}
