package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/logging"
)

// ExportWhiteboardUseCase writes a saved board as indented JSON and reads
// such documents back into the store.
type ExportWhiteboardUseCase struct {
	store repository.KeyValueStore
}

// NewExportWhiteboardUseCase creates a new ExportWhiteboardUseCase.
func NewExportWhiteboardUseCase(store repository.KeyValueStore) *ExportWhiteboardUseCase {
	return &ExportWhiteboardUseCase{store: store}
}

// Load returns the decoded board without touching any canvas.
func (uc *ExportWhiteboardUseCase) Load(ctx context.Context, id entity.BoardID) (*entity.WhiteboardState, error) {
	return loadBoard(ctx, uc.store, id)
}

// Export writes board id to w.
func (uc *ExportWhiteboardUseCase) Export(ctx context.Context, id entity.BoardID, w io.Writer) error {
	state, err := loadBoard(ctx, uc.store, id)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("encode board %s: %w", id, err)
	}
	return nil
}

// Import reads a JSON board from r and stores it under id, or under the id
// recorded in the document when id is empty. An existing board is replaced.
func (uc *ExportWhiteboardUseCase) Import(ctx context.Context, id entity.BoardID, r io.Reader) (*entity.WhiteboardState, error) {
	var state entity.WhiteboardState
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return nil, fmt.Errorf("decode board document: %w", err)
	}
	if id == "" {
		id = state.BoardID
	}
	if id == "" {
		return nil, ErrBoardIDRequired
	}
	if state.Version > entity.WhiteboardStateVersion {
		return nil, fmt.Errorf("%w: document has version %d", ErrVersionMismatch, state.Version)
	}
	if state.Version == 0 {
		state.Version = entity.WhiteboardStateVersion
	}
	state.BoardID = id

	if err := uc.store.PutAll(ctx, BoardNamespace(id), state.Flatten()); err != nil {
		return nil, fmt.Errorf("import board %s: %w", id, err)
	}

	logging.FromContext(ctx).Info().
		Str("board_id", string(id)).
		Int("panel_count", len(state.Panels)).
		Msg("board imported")
	return &state, nil
}
