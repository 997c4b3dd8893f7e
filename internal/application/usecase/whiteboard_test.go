package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	portmocks "github.com/bnema/whiteboard/internal/application/port/mocks"
	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/domain/entity"
	repomocks "github.com/bnema/whiteboard/internal/domain/repository/mocks"
	"github.com/bnema/whiteboard/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sampleState() *entity.WhiteboardState {
	return &entity.WhiteboardState{
		Version: entity.WhiteboardStateVersion,
		Panels: []entity.PanelRecord{
			{
				Kind:     entity.PanelText,
				Position: entity.Pt(10, 20),
				Scale:    1,
				Size:     entity.Size{Width: 320, Height: 240},
				Data:     entity.CustomData{"text": entity.StringValue("hello")},
			},
			{Kind: entity.PanelImage, Position: entity.Pt(400, 100), Scale: 1.5, Size: entity.Square(480)},
		},
	}
}

func savedValues(id entity.BoardID) map[string]entity.CustomValue {
	s := sampleState()
	s.BoardID = id
	s.SavedAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return s.Flatten()
}

func TestSaveWhiteboardUseCase_Execute(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockKeyValueStore(t)
	snap := portmocks.NewMockBoardSnapshotter(ctrl)

	snap.EXPECT().Snapshot().Return(sampleState())

	var written map[string]entity.CustomValue
	store.EXPECT().PutAll(ctx, "board:standup", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, values map[string]entity.CustomValue) error {
			written = values
			return nil
		})

	out, err := usecase.NewSaveWhiteboardUseCase(store, snap).
		Execute(ctx, usecase.SaveInput{BoardID: "standup"})

	require.NoError(t, err)
	assert.Equal(t, entity.BoardID("standup"), out.State.BoardID)
	assert.False(t, out.State.SavedAt.IsZero())
	assert.Equal(t, len(written), out.Keys)
	assert.Equal(t, entity.IntValue(2), written[entity.KeyPanelCount])
	assert.Equal(t, entity.StringValue("hello"), written["panel_0_data_text"])
}

func TestSaveWhiteboardUseCase_RequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockKeyValueStore(t)
	snap := portmocks.NewMockBoardSnapshotter(ctrl)

	_, err := usecase.NewSaveWhiteboardUseCase(store, snap).Execute(testContext(), usecase.SaveInput{})

	assert.ErrorIs(t, err, usecase.ErrBoardIDRequired)
}

func TestSaveWhiteboardUseCase_StoreFailure(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockKeyValueStore(t)
	snap := portmocks.NewMockBoardSnapshotter(ctrl)
	boom := errors.New("disk full")

	snap.EXPECT().Snapshot().Return(sampleState())
	store.EXPECT().PutAll(ctx, "board:b", mock.Anything).Return(boom)

	_, err := usecase.NewSaveWhiteboardUseCase(store, snap).Execute(ctx, usecase.SaveInput{BoardID: "b"})

	assert.ErrorIs(t, err, boom)
}

func TestRestoreWhiteboardUseCase_Execute(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockKeyValueStore(t)
	restorer := portmocks.NewMockBoardRestorer(ctrl)

	store.EXPECT().List(ctx, "board:standup", "").Return(savedValues("standup"), nil)
	restorer.EXPECT().Restore(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, state *entity.WhiteboardState) error {
			require.Len(t, state.Panels, 2)
			assert.Equal(t, entity.PanelText, state.Panels[0].Kind)
			assert.Equal(t, 1.5, state.Panels[1].Scale)
			return nil
		})

	out, err := usecase.NewRestoreWhiteboardUseCase(store, restorer).
		Execute(ctx, usecase.RestoreInput{BoardID: "standup"})

	require.NoError(t, err)
	assert.NoError(t, out.Skipped)
	assert.Equal(t, entity.BoardID("standup"), out.State.BoardID)
}

func TestRestoreWhiteboardUseCase_PartialRestore(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockKeyValueStore(t)
	restorer := portmocks.NewMockBoardRestorer(ctrl)
	skipped := errors.New("panel 1: invalid kind")

	store.EXPECT().List(ctx, "board:b", "").Return(savedValues("b"), nil)
	restorer.EXPECT().Restore(ctx, gomock.Any()).Return(skipped)

	out, err := usecase.NewRestoreWhiteboardUseCase(store, restorer).
		Execute(ctx, usecase.RestoreInput{BoardID: "b"})

	require.NoError(t, err)
	assert.ErrorIs(t, out.Skipped, skipped)
}

func TestRestoreWhiteboardUseCase_NotFound(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockKeyValueStore(t)
	restorer := portmocks.NewMockBoardRestorer(ctrl)

	store.EXPECT().List(ctx, "board:ghost", "").Return(map[string]entity.CustomValue{}, nil)

	_, err := usecase.NewRestoreWhiteboardUseCase(store, restorer).
		Execute(ctx, usecase.RestoreInput{BoardID: "ghost"})

	assert.ErrorIs(t, err, usecase.ErrBoardNotFound)
}

func TestRestoreWhiteboardUseCase_NewerVersionLeavesCanvasAlone(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	store := repomocks.NewMockKeyValueStore(t)
	restorer := portmocks.NewMockBoardRestorer(ctrl)

	values := savedValues("future")
	values["version"] = entity.IntValue(entity.WhiteboardStateVersion + 1)
	store.EXPECT().List(ctx, "board:future", "").Return(values, nil)

	_, err := usecase.NewRestoreWhiteboardUseCase(store, restorer).
		Execute(ctx, usecase.RestoreInput{BoardID: "future"})

	assert.ErrorIs(t, err, usecase.ErrVersionMismatch)
}

func TestListWhiteboardsUseCase_Execute(t *testing.T) {
	ctx := testContext()
	store := repomocks.NewMockKeyValueStore(t)

	older := savedValues("older")
	newer := savedValues("newer")
	newer["saved_at"] = entity.StringValue("2026-04-01T00:00:00Z")

	store.EXPECT().Namespaces(ctx, "board:").Return([]string{"board:broken", "board:newer", "board:older"}, nil)
	store.EXPECT().List(ctx, "board:broken", "").Return(map[string]entity.CustomValue{"junk": entity.IntValue(1)}, nil)
	store.EXPECT().List(ctx, "board:newer", "").Return(newer, nil)
	store.EXPECT().List(ctx, "board:older", "").Return(older, nil)

	out, err := usecase.NewListWhiteboardsUseCase(store).Execute(ctx)

	require.NoError(t, err)
	require.Len(t, out.Boards, 2)
	assert.Equal(t, entity.BoardID("newer"), out.Boards[0].ID)
	assert.Equal(t, entity.BoardID("older"), out.Boards[1].ID)
	assert.Equal(t, 2, out.Boards[1].PanelCount)
	assert.Equal(t, 1, out.Boards[1].ByKind[entity.PanelImage])
}

func TestDeleteWhiteboardUseCase_Execute(t *testing.T) {
	ctx := testContext()
	store := repomocks.NewMockKeyValueStore(t)

	store.EXPECT().Get(ctx, "board:b", entity.KeyPanelCount).Return(entity.IntValue(2), true, nil)
	store.EXPECT().DeleteNamespace(ctx, "board:b").Return(nil)

	err := usecase.NewDeleteWhiteboardUseCase(store).Execute(ctx, usecase.DeleteWhiteboardInput{BoardID: "b"})

	require.NoError(t, err)
}

func TestDeleteWhiteboardUseCase_NotFound(t *testing.T) {
	ctx := testContext()
	store := repomocks.NewMockKeyValueStore(t)

	store.EXPECT().Get(ctx, "board:ghost", entity.KeyPanelCount).Return(entity.CustomValue{}, false, nil)

	err := usecase.NewDeleteWhiteboardUseCase(store).Execute(ctx, usecase.DeleteWhiteboardInput{BoardID: "ghost"})

	assert.ErrorIs(t, err, usecase.ErrBoardNotFound)
}

func TestExportImportWhiteboard(t *testing.T) {
	ctx := testContext()
	store := repomocks.NewMockKeyValueStore(t)
	uc := usecase.NewExportWhiteboardUseCase(store)

	store.EXPECT().List(ctx, "board:standup", "").Return(savedValues("standup"), nil)

	var buf bytes.Buffer
	require.NoError(t, uc.Export(ctx, "standup", &buf))
	assert.Contains(t, buf.String(), `"board_id": "standup"`)

	var imported map[string]entity.CustomValue
	store.EXPECT().PutAll(ctx, "board:copy", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, values map[string]entity.CustomValue) error {
			imported = values
			return nil
		})

	state, err := uc.Import(ctx, "copy", &buf)

	require.NoError(t, err)
	assert.Equal(t, entity.BoardID("copy"), state.BoardID)
	assert.Equal(t, entity.StringValue("hello"), imported["panel_0_data_text"])
	assert.Equal(t, entity.IntValue(2), imported[entity.KeyPanelCount])
}

func TestImportWhiteboard_RejectsNewerVersion(t *testing.T) {
	store := repomocks.NewMockKeyValueStore(t)
	uc := usecase.NewExportWhiteboardUseCase(store)

	_, err := uc.Import(testContext(), "x", strings.NewReader(`{"version": 99, "panels": []}`))

	assert.ErrorIs(t, err, usecase.ErrVersionMismatch)
}

func TestBoardNamespace(t *testing.T) {
	ns := usecase.BoardNamespace("demo")
	assert.Equal(t, "board:demo", ns)

	id, ok := usecase.BoardIDFromNamespace(ns)
	assert.True(t, ok)
	assert.Equal(t, entity.BoardID("demo"), id)

	_, ok = usecase.BoardIDFromNamespace("settings:ui")
	assert.False(t, ok)
}
