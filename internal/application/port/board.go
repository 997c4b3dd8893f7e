//go:generate mockgen -source=board.go -destination=mocks/mock_board.go -package=mocks

package port

import (
	"context"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// BoardSnapshotter provides the current canvas state for persistence.
// Implemented by the panel registry.
type BoardSnapshotter interface {
	// Snapshot captures every panel in display order.
	Snapshot() *entity.WhiteboardState
}

// BoardRestorer rebuilds the canvas from a saved state.
type BoardRestorer interface {
	// Restore replaces the current panels. Records that cannot be restored
	// are skipped and reported in the returned error.
	Restore(ctx context.Context, state *entity.WhiteboardState) error
}
