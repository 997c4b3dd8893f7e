package repository

import (
	"context"

	"github.com/bnema/whiteboard/internal/domain/entity"
)

// KeyValueStore persists typed values grouped into namespaces. Each saved
// board lives in its own namespace.
type KeyValueStore interface {
	// Get returns a single value. ok is false when the key does not exist.
	Get(ctx context.Context, namespace, key string) (value entity.CustomValue, ok bool, err error)

	// List returns every key in namespace starting with prefix. An empty
	// prefix lists the whole namespace; a missing namespace yields an empty map.
	List(ctx context.Context, namespace, prefix string) (map[string]entity.CustomValue, error)

	// PutAll atomically replaces the contents of namespace with values.
	PutAll(ctx context.Context, namespace string, values map[string]entity.CustomValue) error

	// DeleteNamespace removes every key in namespace.
	DeleteNamespace(ctx context.Context, namespace string) error

	// Namespaces lists namespaces starting with prefix, sorted.
	Namespaces(ctx context.Context, prefix string) ([]string, error)
}
