// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/whiteboard/internal/ui"
)

// FrameSink hands frames from the board loop to the Bubble Tea program.
// It holds at most one frame; publishing replaces an unread one, so the
// loop never blocks on a slow terminal.
type FrameSink struct {
	ch chan ui.Frame
}

// NewFrameSink creates an empty sink.
func NewFrameSink() *FrameSink {
	return &FrameSink{ch: make(chan ui.Frame, 1)}
}

// Publish stores f, dropping any frame not yet read.
func (s *FrameSink) Publish(f ui.Frame) {
	for {
		select {
		case s.ch <- f:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// frameMsg carries a published frame into Update.
type frameMsg ui.Frame

// Next waits for the next frame, or returns nil once ctx is done.
func (s *FrameSink) Next(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-s.ch:
			return frameMsg(f)
		case <-ctx.Done():
			return nil
		}
	}
}
