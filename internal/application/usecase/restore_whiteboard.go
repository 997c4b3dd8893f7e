package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/whiteboard/internal/application/port"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/logging"
)

// RestoreWhiteboardUseCase rebuilds the canvas from a saved board.
type RestoreWhiteboardUseCase struct {
	store    repository.KeyValueStore
	restorer port.BoardRestorer
}

// NewRestoreWhiteboardUseCase creates a new RestoreWhiteboardUseCase.
func NewRestoreWhiteboardUseCase(store repository.KeyValueStore, restorer port.BoardRestorer) *RestoreWhiteboardUseCase {
	return &RestoreWhiteboardUseCase{store: store, restorer: restorer}
}

// RestoreInput names the board to load.
type RestoreInput struct {
	BoardID entity.BoardID
}

// RestoreOutput carries the loaded state. Skipped holds the per-record
// failures of a partial restore, nil when every panel came back.
type RestoreOutput struct {
	State   *entity.WhiteboardState
	Skipped error
}

// Execute loads, validates and applies a saved board. The live canvas is
// only touched once the saved state has decoded and passed the version check.
func (uc *RestoreWhiteboardUseCase) Execute(ctx context.Context, input RestoreInput) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	state, err := loadBoard(ctx, uc.store, input.BoardID)
	if err != nil {
		return nil, err
	}

	if state.Version > entity.WhiteboardStateVersion {
		log.Warn().
			Int("state_version", state.Version).
			Int("current_version", entity.WhiteboardStateVersion).
			Msg("board state version is newer than current version")
		return nil, fmt.Errorf("%w: board %s has version %d", ErrVersionMismatch, input.BoardID, state.Version)
	}

	skipped := uc.restorer.Restore(ctx, state)
	if skipped != nil {
		log.Warn().Err(skipped).Str("board_id", string(input.BoardID)).Msg("board partially restored")
	}

	log.Info().
		Str("board_id", string(input.BoardID)).
		Int("panel_count", len(state.Panels)).
		Msg("board restored")

	return &RestoreOutput{State: state, Skipped: skipped}, nil
}
