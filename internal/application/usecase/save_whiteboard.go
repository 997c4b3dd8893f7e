package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/whiteboard/internal/application/port"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/logging"
)

// SaveWhiteboardUseCase persists the live canvas under a board id.
type SaveWhiteboardUseCase struct {
	store       repository.KeyValueStore
	snapshotter port.BoardSnapshotter
	now         func() time.Time
}

// NewSaveWhiteboardUseCase creates a new SaveWhiteboardUseCase.
func NewSaveWhiteboardUseCase(store repository.KeyValueStore, snapshotter port.BoardSnapshotter) *SaveWhiteboardUseCase {
	return &SaveWhiteboardUseCase{
		store:       store,
		snapshotter: snapshotter,
		now:         time.Now,
	}
}

// SaveInput names the board to write.
type SaveInput struct {
	BoardID entity.BoardID
}

// SaveOutput describes what was written.
type SaveOutput struct {
	State *entity.WhiteboardState
	Keys  int
}

// Execute snapshots the canvas and replaces the board's namespace with it.
func (uc *SaveWhiteboardUseCase) Execute(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.BoardID == "" {
		return nil, ErrBoardIDRequired
	}

	state := uc.snapshotter.Snapshot()
	if state == nil {
		state = &entity.WhiteboardState{}
	}
	state.Version = entity.WhiteboardStateVersion
	state.BoardID = input.BoardID
	state.SavedAt = uc.now().UTC()

	values := state.Flatten()
	if err := uc.store.PutAll(ctx, BoardNamespace(input.BoardID), values); err != nil {
		return nil, fmt.Errorf("save board %s: %w", input.BoardID, err)
	}

	logging.FromContext(ctx).Info().
		Str("board_id", string(input.BoardID)).
		Int("panel_count", len(state.Panels)).
		Int("keys", len(values)).
		Msg("board saved")

	return &SaveOutput{State: state, Keys: len(values)}, nil
}
