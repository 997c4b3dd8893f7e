package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/whiteboard/internal/application/port"
	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/logging"
)

// LazyDB implements port.DatabaseProvider. The connection, with its WASM
// compilation and migrations, is created on first access so commands that
// never touch a board skip it.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a lazy database provider for dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyKeyValueStore defers opening the database until the first call.
type LazyKeyValueStore struct {
	provider port.DatabaseProvider
	store    repository.KeyValueStore
	once     sync.Once
	initErr  error
}

// NewLazyKeyValueStore wraps provider in a repository.KeyValueStore.
func NewLazyKeyValueStore(provider port.DatabaseProvider) repository.KeyValueStore {
	return &LazyKeyValueStore{provider: provider}
}

func (r *LazyKeyValueStore) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.store = NewKeyValueStore(db)
	})
	return r.initErr
}

func (r *LazyKeyValueStore) Get(ctx context.Context, namespace, key string) (entity.CustomValue, bool, error) {
	if err := r.init(ctx); err != nil {
		return entity.CustomValue{}, false, err
	}
	return r.store.Get(ctx, namespace, key)
}

func (r *LazyKeyValueStore) List(ctx context.Context, namespace, prefix string) (map[string]entity.CustomValue, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.store.List(ctx, namespace, prefix)
}

func (r *LazyKeyValueStore) PutAll(ctx context.Context, namespace string, values map[string]entity.CustomValue) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.store.PutAll(ctx, namespace, values)
}

func (r *LazyKeyValueStore) DeleteNamespace(ctx context.Context, namespace string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.store.DeleteNamespace(ctx, namespace)
}

func (r *LazyKeyValueStore) Namespaces(ctx context.Context, prefix string) ([]string, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.store.Namespaces(ctx, prefix)
}
