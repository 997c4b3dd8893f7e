package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/logging"
)

// BoardSummary describes one saved board.
type BoardSummary struct {
	ID         entity.BoardID
	SavedAt    time.Time
	Version    int
	PanelCount int
	ByKind     map[entity.PanelKind]int
}

// ListWhiteboardsUseCase enumerates saved boards.
type ListWhiteboardsUseCase struct {
	store repository.KeyValueStore
}

// NewListWhiteboardsUseCase creates a new ListWhiteboardsUseCase.
func NewListWhiteboardsUseCase(store repository.KeyValueStore) *ListWhiteboardsUseCase {
	return &ListWhiteboardsUseCase{store: store}
}

// ListWhiteboardsOutput holds the boards, most recently saved first.
type ListWhiteboardsOutput struct {
	Boards []BoardSummary
}

// Execute lists saved boards. Boards that fail to decode are skipped.
func (uc *ListWhiteboardsUseCase) Execute(ctx context.Context) (*ListWhiteboardsOutput, error) {
	log := logging.FromContext(ctx)

	namespaces, err := uc.store.Namespaces(ctx, BoardNamespacePrefix)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	boards := make([]BoardSummary, 0, len(namespaces))
	for _, ns := range namespaces {
		id, ok := BoardIDFromNamespace(ns)
		if !ok {
			continue
		}
		state, err := loadBoard(ctx, uc.store, id)
		if err != nil {
			log.Warn().Err(err).Str("board_id", string(id)).Msg("skipping unreadable board")
			continue
		}
		boards = append(boards, BoardSummary{
			ID:         id,
			SavedAt:    state.SavedAt,
			Version:    state.Version,
			PanelCount: len(state.Panels),
			ByKind:     state.CountByKind(),
		})
	}

	sort.SliceStable(boards, func(i, j int) bool {
		return boards[i].SavedAt.After(boards[j].SavedAt)
	})

	return &ListWhiteboardsOutput{Boards: boards}, nil
}
