package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and stores each item", func(t *testing.T) {
		store := newMemoryStore()
		svc := NewRecordService(store)

		ids, err := svc.InsertRecords(ctx, []map[string]any{
			{"food_name": "Rice", "calories": "200 kcal"},
			{"food_name": "Egg", "calories": 78, "source": "text"},
		}, "")
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2}, ids)

		require.Len(t, store.records, 2)
		assert.Equal(t, "Rice", store.records[0].FoodName)
		assert.Equal(t, 200.0, store.records[0].Calories)
		assert.Equal(t, "image", store.records[0].Source)
		assert.Equal(t, "text", store.records[1].Source)
		assert.Len(t, store.records[0].CreatedAt, 19)
	})

	t.Run("backdates with record_date", func(t *testing.T) {
		store := newMemoryStore()
		svc := NewRecordService(store)

		_, err := svc.InsertRecords(ctx, []map[string]any{{"food_name": "Rice"}}, "2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", store.records[0].Day())
	})

	t.Run("invalid record_date falls back to now", func(t *testing.T) {
		store := newMemoryStore()
		svc := NewRecordService(store)

		_, err := svc.InsertRecords(ctx, []map[string]any{{"food_name": "Rice"}}, "2024-02-30")
		require.NoError(t, err)
		assert.Len(t, store.records[0].CreatedAt, 19)
		assert.NotEqual(t, "2024-02-30", store.records[0].Day())
	})

	t.Run("empty input rejected", func(t *testing.T) {
		svc := NewRecordService(newMemoryStore())
		_, err := svc.InsertRecords(ctx, nil, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSummaryForDay(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := NewRecordService(store)

	_, err := svc.InsertRecords(ctx, []map[string]any{
		{"food_name": "Rice", "calories": 100, "protein_g": 2},
		{"food_name": "Egg", "calories": 50, "protein_g": 6},
	}, "2024-03-05")
	require.NoError(t, err)

	summary, err := svc.SummaryForDay(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 150.0, summary.Calories)
	assert.Equal(t, 8.0, summary.ProteinG)

	empty, err := svc.SummaryForDay(ctx, "2024-03-06")
	require.NoError(t, err)
	assert.Zero(t, empty.Calories)
}

func TestSummaryForRange(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := NewRecordService(store)

	for _, day := range []string{"2024-03-06", "2024-03-04", "2024-03-04"} {
		_, err := svc.InsertRecords(ctx, []map[string]any{{"food_name": "Meal", "calories": 300}}, day)
		require.NoError(t, err)
	}

	weekly, err := svc.SummaryForRange(ctx, "2024-03-04", "2024-03-10")
	require.NoError(t, err)

	// Days without records are not synthesized; output is ascending by day.
	require.Len(t, weekly, 2)
	assert.Equal(t, "2024-03-04", weekly[0].Day)
	assert.Equal(t, 600.0, weekly[0].Calories)
	assert.Equal(t, "2024-03-06", weekly[1].Day)
	assert.Equal(t, 300.0, weekly[1].Calories)
}
