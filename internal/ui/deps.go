// Package ui assembles the live whiteboard: panel registry, annotation
// engine and touch router driven from a single main loop.
package ui

import (
	"context"
	"fmt"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/infrastructure/config"
)

// ErrMissingDependency reports a required dependency left nil.
type ErrMissingDependency string

func (e ErrMissingDependency) Error() string {
	return fmt.Sprintf("missing required dependency: %s", string(e))
}

// Dependencies holds everything injected into the UI layer.
// It is created once at startup.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config

	// BoardID is the board autosave writes to and Restore reads from.
	// Empty disables both.
	BoardID entity.BoardID

	// Store is optional; without it the board is not persisted.
	Store repository.KeyValueStore

	// OnRedraw is called on the main loop after anything visible changed.
	OnRedraw func()
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	return nil
}
