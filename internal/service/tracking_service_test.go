package service

import (
	"Minaret/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingService_Record(t *testing.T) {
	ctx := context.Background()
	subscription := &model.UserHabit{UserHabitID: 7, UserID: 1, HabitID: 3}

	subscribedRepo := func() *mockUserHabitRepo {
		return &mockUserHabitRepo{
			GetByUserAndHabitFunc: func(ctx context.Context, userID, habitID int) (*model.UserHabit, error) {
				return subscription, nil
			},
			GetByUserHabitIDFunc: func(ctx context.Context, userHabitID int) (*model.UserHabit, error) {
				return subscription, nil
			},
		}
	}

	t.Run("first submission creates a row", func(t *testing.T) {
		trackingRepo := &mockTrackingRepo{
			UpsertFunc: func(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error) {
				return rec, true, nil
			},
		}
		seqRepo := &mockSequenceRepo{
			NextIDFunc: func(ctx context.Context, collection string) (int, error) {
				assert.Equal(t, model.CollTracking, collection)
				return 42, nil
			},
		}

		svc := NewTrackingService(trackingRepo, subscribedRepo(), seqRepo)
		rec, created, err := svc.Record(ctx, 1, 3, "2026-08-30", model.StatusOnTime, "first")

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 42, rec.TrackingID)
		assert.Equal(t, 7, rec.UserHabitID)
		assert.Equal(t, "2026-08-30", rec.Date)
		assert.Equal(t, model.StatusOnTime, rec.Status)
		assert.Equal(t, "first", rec.Note)
	})

	t.Run("second submission merges into the existing row", func(t *testing.T) {
		existing := &model.Tracking{
			TrackingID:  42,
			UserHabitID: 7,
			Date:        "2026-08-30",
			Status:      model.StatusLate,
			Note:        "kept note",
		}
		trackingRepo := &mockTrackingRepo{
			UpsertFunc: func(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error) {
				// 状态覆盖，空 note 不覆盖已有 note
				existing.Status = rec.Status
				if rec.Note != "" {
					existing.Note = rec.Note
				}
				existing.UpdatedAt = rec.UpdatedAt
				return existing, false, nil
			},
		}
		seqRepo := &mockSequenceRepo{
			NextIDFunc: func(ctx context.Context, collection string) (int, error) {
				return 43, nil
			},
		}

		svc := NewTrackingService(trackingRepo, subscribedRepo(), seqRepo)
		rec, created, err := svc.Record(ctx, 1, 3, "2026-08-30", model.StatusInJemaah, "")

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 42, rec.TrackingID, "merge must keep the original row identity")
		assert.Equal(t, model.StatusInJemaah, rec.Status)
		assert.Equal(t, "kept note", rec.Note)
	})

	t.Run("non-empty note overwrites the stored note", func(t *testing.T) {
		existing := &model.Tracking{TrackingID: 42, UserHabitID: 7, Date: "2026-08-30", Note: "old"}
		trackingRepo := &mockTrackingRepo{
			UpsertFunc: func(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error) {
				existing.Status = rec.Status
				if rec.Note != "" {
					existing.Note = rec.Note
				}
				return existing, false, nil
			},
		}

		svc := NewTrackingService(trackingRepo, subscribedRepo(), &mockSequenceRepo{})
		rec, _, err := svc.Record(ctx, 1, 3, "2026-08-30", model.StatusCompleted, "new")

		require.NoError(t, err)
		assert.Equal(t, "new", rec.Note)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewTrackingService(&mockTrackingRepo{}, subscribedRepo(), &mockSequenceRepo{})
		_, _, err := svc.Record(ctx, 1, 3, "30-08-2026", model.StatusOnTime, "")
		assert.ErrorIs(t, err, ErrDateInvalid)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewTrackingService(&mockTrackingRepo{}, subscribedRepo(), &mockSequenceRepo{})
		_, _, err := svc.Record(ctx, 1, 3, "2026-08-30", "done", "")
		assert.ErrorIs(t, err, ErrStatusInvalid)
	})

	t.Run("habit not subscribed", func(t *testing.T) {
		userHabitRepo := &mockUserHabitRepo{
			GetByUserAndHabitFunc: func(ctx context.Context, userID, habitID int) (*model.UserHabit, error) {
				return nil, nil
			},
		}
		svc := NewTrackingService(&mockTrackingRepo{}, userHabitRepo, &mockSequenceRepo{})
		_, _, err := svc.Record(ctx, 1, 3, "2026-08-30", model.StatusOnTime, "")
		assert.ErrorIs(t, err, ErrHabitNotTracked)
	})

	t.Run("concurrent unsubscribe wins and reclaims the row", func(t *testing.T) {
		reclaimed := 0
		userHabitRepo := &mockUserHabitRepo{
			GetByUserAndHabitFunc: func(ctx context.Context, userID, habitID int) (*model.UserHabit, error) {
				return subscription, nil
			},
			GetByUserHabitIDFunc: func(ctx context.Context, userHabitID int) (*model.UserHabit, error) {
				// 写入与复查之间订阅被退掉了
				return nil, nil
			},
		}
		trackingRepo := &mockTrackingRepo{
			UpsertFunc: func(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error) {
				return rec, true, nil
			},
			DeleteByTrackingIDFunc: func(ctx context.Context, trackingID int) error {
				reclaimed = trackingID
				return nil
			},
		}
		seqRepo := &mockSequenceRepo{
			NextIDFunc: func(ctx context.Context, collection string) (int, error) {
				return 42, nil
			},
		}

		svc := NewTrackingService(trackingRepo, userHabitRepo, seqRepo)
		_, _, err := svc.Record(ctx, 1, 3, "2026-08-30", model.StatusOnTime, "")

		assert.ErrorIs(t, err, ErrHabitNotTracked)
		assert.Equal(t, 42, reclaimed, "the just-written row must be deleted")
	})
}

func TestTrackingService_ListForUser(t *testing.T) {
	ctx := context.Background()
	userHabits := []*model.UserHabit{
		{UserHabitID: 7, UserID: 1, HabitID: 3},
		{UserHabitID: 8, UserID: 1, HabitID: 5},
	}

	t.Run("no filter queries all subscriptions", func(t *testing.T) {
		var queried []int
		userHabitRepo := &mockUserHabitRepo{
			ListByUserFunc: func(ctx context.Context, userID int) ([]*model.UserHabit, error) {
				return userHabits, nil
			},
		}
		trackingRepo := &mockTrackingRepo{
			FindViewsFunc: func(ctx context.Context, userHabitIDs []int, date string) ([]*model.TrackingView, error) {
				queried = userHabitIDs
				return []*model.TrackingView{}, nil
			},
		}

		svc := NewTrackingService(trackingRepo, userHabitRepo, &mockSequenceRepo{})
		_, err := svc.ListForUser(ctx, 1, "", 0)

		require.NoError(t, err)
		assert.Equal(t, []int{7, 8}, queried)
	})

	t.Run("habit filter narrows to one subscription", func(t *testing.T) {
		var queried []int
		userHabitRepo := &mockUserHabitRepo{
			ListByUserFunc: func(ctx context.Context, userID int) ([]*model.UserHabit, error) {
				return userHabits, nil
			},
		}
		trackingRepo := &mockTrackingRepo{
			FindViewsFunc: func(ctx context.Context, userHabitIDs []int, date string) ([]*model.TrackingView, error) {
				queried = userHabitIDs
				return []*model.TrackingView{}, nil
			},
		}

		svc := NewTrackingService(trackingRepo, userHabitRepo, &mockSequenceRepo{})
		_, err := svc.ListForUser(ctx, 1, "", 5)

		require.NoError(t, err)
		assert.Equal(t, []int{8}, queried)
	})

	t.Run("filtering an unsubscribed habit returns empty, not an error", func(t *testing.T) {
		userHabitRepo := &mockUserHabitRepo{
			ListByUserFunc: func(ctx context.Context, userID int) ([]*model.UserHabit, error) {
				return userHabits, nil
			},
		}
		trackingRepo := &mockTrackingRepo{
			FindViewsFunc: func(ctx context.Context, userHabitIDs []int, date string) ([]*model.TrackingView, error) {
				t.Fatal("FindViews should not be called")
				return nil, nil
			},
		}

		svc := NewTrackingService(trackingRepo, userHabitRepo, &mockSequenceRepo{})
		views, err := svc.ListForUser(ctx, 1, "", 99)

		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("invalid date filter", func(t *testing.T) {
		svc := NewTrackingService(&mockTrackingRepo{}, &mockUserHabitRepo{}, &mockSequenceRepo{})
		_, err := svc.ListForUser(ctx, 1, "yesterday", 0)
		assert.ErrorIs(t, err, ErrDateInvalid)
	})
}
