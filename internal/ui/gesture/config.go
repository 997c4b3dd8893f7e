// Package gesture implements the per-panel direct manipulation engine:
// drag with slop, two finger pinch resize, exclusion zones, bounds
// clamping and animated transitions.
package gesture

import (
	"time"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// Config tunes gesture recognition. Zero fields take the defaults.
type Config struct {
	// DragSlop is the per-axis distance a pointer must travel before a
	// drag starts.
	DragSlop float64
	// ResizeThreshold is the minimum size change, in pixels, that a pinch
	// step must produce to be applied.
	ResizeThreshold int
	// VisibleFraction is the share of width and height that must stay
	// inside the parent bounds.
	VisibleFraction float64
	// AnimationDuration is the length of animated transitions.
	AnimationDuration time.Duration
	// MinSizeFloor is the lowest minimum size SetSizeLimits accepts.
	MinSizeFloor int
	// DefaultMinSize is the minimum side length before SetSizeLimits.
	DefaultMinSize int
	// DefaultMaxFraction sets the default maximum side to this fraction of
	// the smaller display dimension.
	DefaultMaxFraction float64
	// ResetPosition is where ResetTransform puts the panel.
	ResetPosition entity.Point
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DragSlop:           10,
		ResizeThreshold:    5,
		VisibleFraction:    0.2,
		AnimationDuration:  300 * time.Millisecond,
		MinSizeFloor:       100,
		DefaultMinSize:     150,
		DefaultMaxFraction: 0.9,
		ResetPosition:      entity.Pt(100, 100),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DragSlop <= 0 {
		c.DragSlop = d.DragSlop
	}
	if c.ResizeThreshold <= 0 {
		c.ResizeThreshold = d.ResizeThreshold
	}
	if c.VisibleFraction <= 0 || c.VisibleFraction > 1 {
		c.VisibleFraction = d.VisibleFraction
	}
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = d.AnimationDuration
	}
	if c.MinSizeFloor <= 0 {
		c.MinSizeFloor = d.MinSizeFloor
	}
	if c.DefaultMinSize <= 0 {
		c.DefaultMinSize = d.DefaultMinSize
	}
	if c.DefaultMaxFraction <= 0 || c.DefaultMaxFraction > 1 {
		c.DefaultMaxFraction = d.DefaultMaxFraction
	}
	if c.ResetPosition == (entity.Point{}) {
		c.ResetPosition = d.ResetPosition
	}
	return c
}

// State is the gesture recognizer state.
type State int

const (
	StateIdle State = iota
	StatePendingDrag
	StateDragging
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingDrag:
		return "pending_drag"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}
