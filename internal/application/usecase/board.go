package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
)

// BoardNamespacePrefix prefixes every saved board's namespace in the store.
const BoardNamespacePrefix = "board:"

var (
	// ErrBoardNotFound is returned when no saved board has the requested id.
	ErrBoardNotFound = errors.New("board not found")

	// ErrVersionMismatch is returned when a saved board is newer than this build.
	ErrVersionMismatch = errors.New("board state version mismatch")

	// ErrBoardIDRequired is returned when an operation is called without an id.
	ErrBoardIDRequired = errors.New("board id required")
)

// BoardNamespace returns the store namespace for id.
func BoardNamespace(id entity.BoardID) string {
	return BoardNamespacePrefix + string(id)
}

// BoardIDFromNamespace is the inverse of BoardNamespace.
func BoardIDFromNamespace(ns string) (entity.BoardID, bool) {
	id, ok := strings.CutPrefix(ns, BoardNamespacePrefix)
	return entity.BoardID(id), ok && id != ""
}

// loadBoard reads and decodes a saved board.
func loadBoard(ctx context.Context, store repository.KeyValueStore, id entity.BoardID) (*entity.WhiteboardState, error) {
	if id == "" {
		return nil, ErrBoardIDRequired
	}
	values, err := store.List(ctx, BoardNamespace(id), "")
	if err != nil {
		return nil, fmt.Errorf("read board %s: %w", id, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	state, err := entity.UnflattenWhiteboardState(id, values)
	if err != nil {
		return nil, fmt.Errorf("decode board %s: %w", id, err)
	}
	return state, nil
}
