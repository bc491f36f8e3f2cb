package service

import (
	"Minaret/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitService_CreateCustomHabit(t *testing.T) {
	ctx := context.Background()

	t.Run("custom habits allocate above the seeded range", func(t *testing.T) {
		var created *model.Habit
		habitRepo := &mockHabitRepo{
			CreateFunc: func(ctx context.Context, habit *model.Habit) error {
				created = habit
				return nil
			},
		}
		seqRepo := &mockSequenceRepo{
			NextIDFunc: func(ctx context.Context, collection string) (int, error) {
				assert.Equal(t, model.CollHabits, collection)
				return model.SeededHabitMaxID + 1, nil
			},
		}

		svc := NewHabitService(habitRepo, seqRepo)
		habit, err := svc.CreateCustomHabit(ctx, "Read Quran", "📖", "#00FF00", model.RepeatEveryday)

		require.NoError(t, err)
		assert.Equal(t, 16, habit.HabitID)
		assert.Equal(t, model.HabitTypeCustom, habit.Type)
		assert.Equal(t, "Custom", habit.Category)
		assert.Equal(t, created, habit)
	})

	t.Run("invalid repeat frequency", func(t *testing.T) {
		svc := NewHabitService(&mockHabitRepo{}, &mockSequenceRepo{})
		_, err := svc.CreateCustomHabit(ctx, "x", "", "", "sometimes")
		assert.ErrorIs(t, err, ErrFrequencyInvalid)
	})
}
