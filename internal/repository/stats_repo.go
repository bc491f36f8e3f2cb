package repository

import (
	"Minaret/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatsRepo 管理端统计的只读查询。所有方法都不产生任何写入，
// 行级原子性由单文档操作保证，无需跨行事务。
type StatsRepo interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersSince(ctx context.Context, since time.Time) (int64, error)
	CountTracking(ctx context.Context) (int64, error)
	ActiveUserHabitIDs(ctx context.Context, since time.Time) ([]int, error)
	UserIDsForUserHabits(ctx context.Context, userHabitIDs []int) ([]int, error)
	TopHabits(ctx context.Context, limit int) ([]*model.HabitPopularity, error)
	DailyCountsSince(ctx context.Context, since time.Time) ([]model.DailyActivity, error)
	HabitsPerUser(ctx context.Context) ([]model.UserHabitCount, error)
}

type statsRepoImpl struct {
	users      *mongo.Collection
	userHabits *mongo.Collection
	tracking   *mongo.Collection
}

func NewStatsRepo(db *mongo.Database) StatsRepo {
	return &statsRepoImpl{
		users:      db.Collection(model.CollUsers),
		userHabits: db.Collection(model.CollUserHabits),
		tracking:   db.Collection(model.CollTracking),
	}
}

// CountUsers 用户总数
func (s *statsRepoImpl) CountUsers(ctx context.Context) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{})
}

// CountUsersSince 指定时间后注册的用户数
func (s *statsRepoImpl) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}

// CountTracking 打卡记录总数
func (s *statsRepoImpl) CountTracking(ctx context.Context) (int64, error) {
	return s.tracking.CountDocuments(ctx, bson.M{})
}

// ActiveUserHabitIDs 指定时间后产生过打卡记录的订阅关系 id（去重）
func (s *statsRepoImpl) ActiveUserHabitIDs(ctx context.Context, since time.Time) ([]int, error) {
	filter := bson.M{"created_at": bson.M{"$gte": since}}
	values, err := s.tracking.Distinct(ctx, "user_habit_id", filter)
	if err != nil {
		return nil, err
	}
	return toIntSlice(values), nil
}

// UserIDsForUserHabits 将订阅关系 id 映射为去重后的用户 id
func (s *statsRepoImpl) UserIDsForUserHabits(ctx context.Context, userHabitIDs []int) ([]int, error) {
	if len(userHabitIDs) == 0 {
		return []int{}, nil
	}
	filter := bson.M{"user_habit_id": bson.M{"$in": userHabitIDs}}
	values, err := s.userHabits.Distinct(ctx, "user_id", filter)
	if err != nil {
		return nil, err
	}
	return toIntSlice(values), nil
}

// TopHabits 按订阅人数取前 limit 个习惯，连同标题与 emoji
func (s *statsRepoImpl) TopHabits(ctx context.Context, limit int) ([]*model.HabitPopularity, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$habit_id",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.CollHabits,
			"localField":   "_id",
			"foreignField": "habit_id",
			"as":           "habit",
		}}},
		{{Key: "$unwind", Value: "$habit"}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"habit_id": "$_id",
			"title":    "$habit.title",
			"emoji":    "$habit.emoji",
			"count":    1,
		}}},
	}

	cursor, err := s.userHabits.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*model.HabitPopularity, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// DailyCountsSince 指定时间后按自然日聚合的打卡计数，日期升序。
// 没有活动的日期不会出现在结果里，补零由 service 层完成。
func (s *statsRepoImpl) DailyCountsSince(ctx context.Context, since time.Time) ([]model.DailyActivity, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$created_at",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"date":  "$_id",
			"count": 1,
		}}},
	}

	cursor, err := s.tracking.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]model.DailyActivity, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// HabitsPerUser 每个用户的订阅习惯数量（活跃度分桶的原始数据）
func (s *statsRepoImpl) HabitsPerUser(ctx context.Context) ([]model.UserHabitCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$user_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.userHabits.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]model.UserHabitCount, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func toIntSlice(values []interface{}) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		out = append(out, asInt(v))
	}
	return out
}
