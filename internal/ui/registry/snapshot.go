package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/logging"
)

// Snapshot captures every panel in display order.
func (r *Registry) Snapshot() *entity.WhiteboardState {
	state := &entity.WhiteboardState{
		Version: entity.WhiteboardStateVersion,
		Panels:  make([]entity.PanelRecord, 0, len(r.panels)),
		SavedAt: time.Now().UTC(),
	}
	for _, p := range r.panels {
		state.Panels = append(state.Panels, entity.PanelRecord{
			Kind:     p.Kind,
			Position: p.Surface.Position(),
			Scale:    p.Surface.Scale(),
			Size:     p.Surface.Size(),
			Data:     p.Content.SaveData(),
		})
	}
	return state
}

// Restore replaces all panels with the ones described by state. Records
// with an unknown kind are skipped; their errors are joined and returned
// after every valid record has been restored.
func (r *Registry) Restore(ctx context.Context, state *entity.WhiteboardState) error {
	log := logging.FromContext(ctx)
	r.Clear(ctx)
	if state == nil {
		return nil
	}

	var errs []error
	for i, rec := range state.Panels {
		if !rec.Kind.Valid() {
			log.Warn().Int("record", i).Str("kind", string(rec.Kind)).Msg("skipping panel with unknown kind")
			errs = append(errs, fmt.Errorf("record %d: %w: %q", i, ErrInvalidPanelKind, rec.Kind))
			continue
		}
		if err := r.checkCapacity(ctx); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			break
		}
		c, err := r.factory.New(rec.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w: %v", i, ErrInvalidPanelKind, err))
			continue
		}
		c.LoadData(ctx, rec.Data)

		p := r.insert(ctx, c, rec.Position)
		switch {
		case rec.Size.Width > 0 && rec.Size.Height > 0:
			p.Surface.SetSize(rec.Size.Width, rec.Size.Height, false)
		case rec.Scale > 0:
			p.Surface.ZoomTo(rec.Scale, false)
		}
		p.Surface.MoveTo(rec.Position.X, rec.Position.Y, false)
	}

	log.Info().Int("restored", len(r.panels)).Int("skipped", len(errs)).Msg("whiteboard restored")
	return errors.Join(errs...)
}
