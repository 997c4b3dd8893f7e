package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/logging"
)

// DeleteWhiteboardUseCase removes a saved board.
type DeleteWhiteboardUseCase struct {
	store repository.KeyValueStore
}

// NewDeleteWhiteboardUseCase creates a new DeleteWhiteboardUseCase.
func NewDeleteWhiteboardUseCase(store repository.KeyValueStore) *DeleteWhiteboardUseCase {
	return &DeleteWhiteboardUseCase{store: store}
}

// DeleteWhiteboardInput names the board to delete.
type DeleteWhiteboardInput struct {
	BoardID entity.BoardID
}

// Execute deletes the board, failing with ErrBoardNotFound if it does not exist.
func (uc *DeleteWhiteboardUseCase) Execute(ctx context.Context, input DeleteWhiteboardInput) error {
	if input.BoardID == "" {
		return ErrBoardIDRequired
	}
	ns := BoardNamespace(input.BoardID)

	_, ok, err := uc.store.Get(ctx, ns, entity.KeyPanelCount)
	if err != nil {
		return fmt.Errorf("check board %s: %w", input.BoardID, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrBoardNotFound, input.BoardID)
	}

	if err := uc.store.DeleteNamespace(ctx, ns); err != nil {
		return fmt.Errorf("delete board %s: %w", input.BoardID, err)
	}

	logging.FromContext(ctx).Info().Str("board_id", string(input.BoardID)).Msg("board deleted")
	return nil
}
