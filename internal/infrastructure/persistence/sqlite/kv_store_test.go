package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/domain/entity"
	"github.com/bnema/whiteboard/internal/domain/repository"
	"github.com/bnema/whiteboard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/whiteboard/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newStore(t *testing.T) repository.KeyValueStore {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "whiteboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewKeyValueStore(db)
}

func TestKeyValueStore_PutAllAndGet(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)

	values := map[string]entity.CustomValue{
		"name":    entity.StringValue("retro"),
		"count":   entity.IntValue(3),
		"ratio":   entity.FloatValue(0.75),
		"enabled": entity.BoolValue(true),
	}
	require.NoError(t, store.PutAll(ctx, "board:retro", values))

	for key, want := range values {
		got, ok, err := store.Get(ctx, "board:retro", key)
		require.NoError(t, err)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, ok, err := store.Get(ctx, "board:retro", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyValueStore_PutAllReplacesNamespace(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)

	require.NoError(t, store.PutAll(ctx, "board:a", map[string]entity.CustomValue{
		"panel_0_kind": entity.StringValue("TEXT"),
		"panel_1_kind": entity.StringValue("IMAGE"),
	}))
	require.NoError(t, store.PutAll(ctx, "board:b", map[string]entity.CustomValue{
		"panel_0_kind": entity.StringValue("MINIMAL"),
	}))
	require.NoError(t, store.PutAll(ctx, "board:a", map[string]entity.CustomValue{
		"panel_0_kind": entity.StringValue("STANDARD"),
	}))

	a, err := store.List(ctx, "board:a", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]entity.CustomValue{"panel_0_kind": entity.StringValue("STANDARD")}, a)

	b, err := store.List(ctx, "board:b", "")
	require.NoError(t, err)
	assert.Len(t, b, 1, "other namespaces untouched")
}

func TestKeyValueStore_ListPrefix(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)
	require.NoError(t, store.PutAll(ctx, "board:a", map[string]entity.CustomValue{
		"panel_0_x":      entity.FloatValue(1),
		"panel_0_y":      entity.FloatValue(2),
		"panel_10_x":     entity.FloatValue(3),
		"panel_count":    entity.IntValue(11),
		"panel_0_data_%": entity.StringValue("literal percent"),
	}))

	got, err := store.List(ctx, "board:a", "panel_0_")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Contains(t, got, "panel_0_data_%")

	none, err := store.List(ctx, "board:missing", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestKeyValueStore_NamespacesAndDelete(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)
	one := map[string]entity.CustomValue{"k": entity.IntValue(1)}
	require.NoError(t, store.PutAll(ctx, "board:b", one))
	require.NoError(t, store.PutAll(ctx, "board:a", one))
	require.NoError(t, store.PutAll(ctx, "prefs", one))

	boards, err := store.Namespaces(ctx, "board:")
	require.NoError(t, err)
	assert.Equal(t, []string{"board:a", "board:b"}, boards)

	require.NoError(t, store.DeleteNamespace(ctx, "board:a"))
	boards, err = store.Namespaces(ctx, "board:")
	require.NoError(t, err)
	assert.Equal(t, []string{"board:b"}, boards)
}

func TestKeyValueStore_RejectsUntypedValue(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)
	require.NoError(t, store.PutAll(ctx, "board:a", map[string]entity.CustomValue{"k": entity.IntValue(1)}))

	err := store.PutAll(ctx, "board:a", map[string]entity.CustomValue{"bad": {}})

	require.Error(t, err)
	kept, err := store.List(ctx, "board:a", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]entity.CustomValue{"k": entity.IntValue(1)}, kept, "failed replace rolls back")
}

func TestKeyValueStore_WhiteboardRoundTrip(t *testing.T) {
	ctx := testCtx()
	store := newStore(t)

	state := &entity.WhiteboardState{
		Version: entity.WhiteboardStateVersion,
		BoardID: "demo",
		SavedAt: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		Panels: []entity.PanelRecord{
			{
				Kind: entity.PanelModel3D, Position: entity.Pt(12.5, 40), Scale: 1.25,
				Size: entity.Square(500),
				Data: entity.CustomData{
					"modelIndex":          entity.IntValue(2),
					"isAnimationPaused":   entity.BoolValue(true),
					"pausedAnimationTime": entity.FloatValue(1.5),
				},
			},
			{Kind: entity.PanelMinimal, Position: entity.Pt(0, 0), Scale: 1, Size: entity.Square(240)},
		},
	}
	require.NoError(t, store.PutAll(ctx, "board:demo", state.Flatten()))

	values, err := store.List(ctx, "board:demo", "")
	require.NoError(t, err)
	got, err := entity.UnflattenWhiteboardState("demo", values)
	require.NoError(t, err)

	assert.Equal(t, state, got)
}

func TestGetMigrationStatus(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "whiteboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}
