package service

import (
	"Minaret/internal/model"
	"context"
	"time"
)

// mockSequenceRepo 模拟 ID 计数器
type mockSequenceRepo struct {
	NextIDFunc func(ctx context.Context, collection string) (int, error)
	SyncFunc   func(ctx context.Context, collection, idField string, floor int) error
}

func (m *mockSequenceRepo) NextID(ctx context.Context, collection string) (int, error) {
	if m.NextIDFunc != nil {
		return m.NextIDFunc(ctx, collection)
	}
	return 1, nil
}

func (m *mockSequenceRepo) Sync(ctx context.Context, collection, idField string, floor int) error {
	if m.SyncFunc != nil {
		return m.SyncFunc(ctx, collection, idField, floor)
	}
	return nil
}

// mockUserRepo 模拟用户存储
type mockUserRepo struct {
	GetByUserIDFunc          func(ctx context.Context, userID int) (*model.User, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*model.User, error)
	GetByEmailOrUsernameFunc func(ctx context.Context, email, username string) (*model.User, error)
	CreateFunc               func(ctx context.Context, user *model.User) error
	UpdateLastSyncFunc       func(ctx context.Context, userID int, at time.Time) error
}

func (m *mockUserRepo) GetByUserID(ctx context.Context, userID int) (*model.User, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	if m.GetByEmailOrUsernameFunc != nil {
		return m.GetByEmailOrUsernameFunc(ctx, email, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) UpdateLastSync(ctx context.Context, userID int, at time.Time) error {
	if m.UpdateLastSyncFunc != nil {
		return m.UpdateLastSyncFunc(ctx, userID, at)
	}
	return nil
}

// mockHabitRepo 模拟习惯目录存储
type mockHabitRepo struct {
	GetByHabitIDFunc func(ctx context.Context, habitID int) (*model.Habit, error)
	ListAllFunc      func(ctx context.Context) ([]*model.Habit, error)
	CreateFunc       func(ctx context.Context, habit *model.Habit) error
	SeedDefaultsFunc func(ctx context.Context, habits []model.Habit, at time.Time) error
}

func (m *mockHabitRepo) GetByHabitID(ctx context.Context, habitID int) (*model.Habit, error) {
	if m.GetByHabitIDFunc != nil {
		return m.GetByHabitIDFunc(ctx, habitID)
	}
	return nil, nil
}

func (m *mockHabitRepo) ListAll(ctx context.Context) ([]*model.Habit, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockHabitRepo) Create(ctx context.Context, habit *model.Habit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, habit)
	}
	return nil
}

func (m *mockHabitRepo) SeedDefaults(ctx context.Context, habits []model.Habit, at time.Time) error {
	if m.SeedDefaultsFunc != nil {
		return m.SeedDefaultsFunc(ctx, habits, at)
	}
	return nil
}

// mockUserHabitRepo 模拟订阅关系存储
type mockUserHabitRepo struct {
	GetByUserAndHabitFunc    func(ctx context.Context, userID, habitID int) (*model.UserHabit, error)
	GetByUserHabitIDFunc     func(ctx context.Context, userHabitID int) (*model.UserHabit, error)
	ListByUserFunc           func(ctx context.Context, userID int) ([]*model.UserHabit, error)
	ListWithHabitsFunc       func(ctx context.Context, userID int) ([]*model.UserHabitWithHabit, error)
	CreateFunc               func(ctx context.Context, userHabit *model.UserHabit) error
	DeleteByUserAndHabitFunc func(ctx context.Context, userID, habitID int) (*model.UserHabit, error)
}

func (m *mockUserHabitRepo) GetByUserAndHabit(ctx context.Context, userID, habitID int) (*model.UserHabit, error) {
	if m.GetByUserAndHabitFunc != nil {
		return m.GetByUserAndHabitFunc(ctx, userID, habitID)
	}
	return nil, nil
}

func (m *mockUserHabitRepo) GetByUserHabitID(ctx context.Context, userHabitID int) (*model.UserHabit, error) {
	if m.GetByUserHabitIDFunc != nil {
		return m.GetByUserHabitIDFunc(ctx, userHabitID)
	}
	return nil, nil
}

func (m *mockUserHabitRepo) ListByUser(ctx context.Context, userID int) ([]*model.UserHabit, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserHabitRepo) ListWithHabits(ctx context.Context, userID int) ([]*model.UserHabitWithHabit, error) {
	if m.ListWithHabitsFunc != nil {
		return m.ListWithHabitsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserHabitRepo) Create(ctx context.Context, userHabit *model.UserHabit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userHabit)
	}
	return nil
}

func (m *mockUserHabitRepo) DeleteByUserAndHabit(ctx context.Context, userID, habitID int) (*model.UserHabit, error) {
	if m.DeleteByUserAndHabitFunc != nil {
		return m.DeleteByUserAndHabitFunc(ctx, userID, habitID)
	}
	return nil, nil
}

// mockTrackingRepo 模拟打卡记录存储
type mockTrackingRepo struct {
	UpsertFunc               func(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error)
	DeleteByTrackingIDFunc   func(ctx context.Context, trackingID int) error
	DeleteByUserHabitIDsFunc func(ctx context.Context, userHabitIDs []int) (int64, error)
	FindViewsFunc            func(ctx context.Context, userHabitIDs []int, date string) ([]*model.TrackingView, error)
}

func (m *mockTrackingRepo) Upsert(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, rec)
	}
	return rec, true, nil
}

func (m *mockTrackingRepo) DeleteByTrackingID(ctx context.Context, trackingID int) error {
	if m.DeleteByTrackingIDFunc != nil {
		return m.DeleteByTrackingIDFunc(ctx, trackingID)
	}
	return nil
}

func (m *mockTrackingRepo) DeleteByUserHabitIDs(ctx context.Context, userHabitIDs []int) (int64, error) {
	if m.DeleteByUserHabitIDsFunc != nil {
		return m.DeleteByUserHabitIDsFunc(ctx, userHabitIDs)
	}
	return 0, nil
}

func (m *mockTrackingRepo) FindViews(ctx context.Context, userHabitIDs []int, date string) ([]*model.TrackingView, error) {
	if m.FindViewsFunc != nil {
		return m.FindViewsFunc(ctx, userHabitIDs, date)
	}
	return []*model.TrackingView{}, nil
}

// mockStatsRepo 模拟统计查询
type mockStatsRepo struct {
	CountUsersFunc           func(ctx context.Context) (int64, error)
	CountUsersSinceFunc      func(ctx context.Context, since time.Time) (int64, error)
	CountTrackingFunc        func(ctx context.Context) (int64, error)
	ActiveUserHabitIDsFunc   func(ctx context.Context, since time.Time) ([]int, error)
	UserIDsForUserHabitsFunc func(ctx context.Context, userHabitIDs []int) ([]int, error)
	TopHabitsFunc            func(ctx context.Context, limit int) ([]*model.HabitPopularity, error)
	DailyCountsSinceFunc     func(ctx context.Context, since time.Time) ([]model.DailyActivity, error)
	HabitsPerUserFunc        func(ctx context.Context) ([]model.UserHabitCount, error)
}

func (m *mockStatsRepo) CountUsers(ctx context.Context) (int64, error) {
	if m.CountUsersFunc != nil {
		return m.CountUsersFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepo) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountUsersSinceFunc != nil {
		return m.CountUsersSinceFunc(ctx, since)
	}
	return 0, nil
}

func (m *mockStatsRepo) CountTracking(ctx context.Context) (int64, error) {
	if m.CountTrackingFunc != nil {
		return m.CountTrackingFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepo) ActiveUserHabitIDs(ctx context.Context, since time.Time) ([]int, error) {
	if m.ActiveUserHabitIDsFunc != nil {
		return m.ActiveUserHabitIDsFunc(ctx, since)
	}
	return nil, nil
}

func (m *mockStatsRepo) UserIDsForUserHabits(ctx context.Context, userHabitIDs []int) ([]int, error) {
	if m.UserIDsForUserHabitsFunc != nil {
		return m.UserIDsForUserHabitsFunc(ctx, userHabitIDs)
	}
	return nil, nil
}

func (m *mockStatsRepo) TopHabits(ctx context.Context, limit int) ([]*model.HabitPopularity, error) {
	if m.TopHabitsFunc != nil {
		return m.TopHabitsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStatsRepo) DailyCountsSince(ctx context.Context, since time.Time) ([]model.DailyActivity, error) {
	if m.DailyCountsSinceFunc != nil {
		return m.DailyCountsSinceFunc(ctx, since)
	}
	return nil, nil
}

func (m *mockStatsRepo) HabitsPerUser(ctx context.Context) ([]model.UserHabitCount, error) {
	if m.HabitsPerUserFunc != nil {
		return m.HabitsPerUserFunc(ctx)
	}
	return nil, nil
}
