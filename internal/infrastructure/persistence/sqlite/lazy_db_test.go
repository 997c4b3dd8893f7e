package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "boards.db"))
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	var one int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentCallersShareConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "boards.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	dbs := make([]*sql.DB, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			dbs[i] = db
		}()
	}
	wg.Wait()

	for _, db := range dbs[1:] {
		assert.Same(t, dbs[0], db)
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "boards.db"))

	assert.NoError(t, lazy.Close())
	assert.Equal(t, filepath.Base(lazy.Path()), "boards.db")
}

func TestLazyKeyValueStore_DefersOpen(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "boards.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	store := sqlite.NewLazyKeyValueStore(lazy)

	assert.False(t, lazy.IsInitialized())

	require.NoError(t, store.PutAll(ctx, "board:a", map[string]entity.CustomValue{"panel_count": entity.IntValue(0)}))
	assert.True(t, lazy.IsInitialized())

	v, ok, err := store.Get(ctx, "board:a", "panel_count")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entity.IntValue(0), v)
}

func TestLazyKeyValueStore_ReportsOpenFailure(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewLazyKeyValueStore(sqlite.NewLazyDB(""))

	_, err := store.Namespaces(ctx, "")

	assert.Error(t, err)
}
