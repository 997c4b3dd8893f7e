package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whiteboard/internal/application/port/mocks"
	"github.com/bnema/whiteboard/internal/application/usecase"
	"github.com/bnema/whiteboard/internal/domain/entity"
)

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	keys := []entity.ConfigKeyInfo{
		{
			Key:         "gesture.drag_slop",
			Type:        "float64",
			Default:     "10",
			Description: "Pixels a finger may travel before a drag starts",
			Range:       "0-100",
			Section:     "Gesture",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     "Logging",
		},
	}

	t.Run("returns every key without a section filter", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(keys)

		result, err := usecase.NewGetConfigSchemaUseCase(provider).
			Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Equal(t, keys, result.Keys)
	})

	t.Run("filters by section case-insensitively", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(keys)

		result, err := usecase.NewGetConfigSchemaUseCase(provider).
			Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "logging.level", result.Keys[0].Key)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		result, err := usecase.NewGetConfigSchemaUseCase(provider).
			Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}
