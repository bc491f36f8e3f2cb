package repository

import (
	"Minaret/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// upsertRetry 并发双插时败者收到 E11000，重试后必然落到更新分支
const upsertRetry = 3

type TrackingRepo interface {
	Upsert(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error)
	DeleteByTrackingID(ctx context.Context, trackingID int) error
	DeleteByUserHabitIDs(ctx context.Context, userHabitIDs []int) (int64, error)
	FindViews(ctx context.Context, userHabitIDs []int, date string) ([]*model.TrackingView, error)
}

type trackingRepoImpl struct {
	col *mongo.Collection
}

func NewTrackingRepo(db *mongo.Database) TrackingRepo {
	return &trackingRepoImpl{
		col: db.Collection(model.CollTracking),
	}
}

// Upsert 以 (user_habit_id, date) 为键的条件写入，一次调用即完成
// "存在则合并、不存在则创建"，查找与写入之间没有竞态窗口：
//   - $set 无条件覆盖 status 与 updated_at；note 仅在非空时覆盖（字段级
//     latest-write-wins，容忍客户端重传时省略 note）
//   - $setOnInsert 写入预分配的 tracking_id 与 created_at
//
// 返回写入后的文档及 created 标记（返回行携带预分配 id 即为新建）。
func (s *trackingRepoImpl) Upsert(ctx context.Context, rec *model.Tracking) (*model.Tracking, bool, error) {
	filter, update := buildTrackingUpsert(rec)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out model.Tracking
	var err error
	for i := 0; i < upsertRetry; i++ {
		err = s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
		if err == nil {
			return &out, out.TrackingID == rec.TrackingID, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, false, err
		}
	}
	return nil, false, err
}

// buildTrackingUpsert 构造以 (user_habit_id, date) 为键的合并更新文档
func buildTrackingUpsert(rec *model.Tracking) (bson.M, bson.M) {
	filter := bson.M{
		"user_habit_id": rec.UserHabitID,
		"date":          rec.Date,
	}

	set := bson.M{
		"status":     rec.Status,
		"updated_at": rec.UpdatedAt,
	}
	if rec.Note != "" {
		set["note"] = rec.Note
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"tracking_id": rec.TrackingID,
			"created_at":  rec.CreatedAt,
		},
	}
	return filter, update
}

// DeleteByTrackingID 删除单条打卡记录（用于回收竞态下写入的孤儿行）
func (s *trackingRepoImpl) DeleteByTrackingID(ctx context.Context, trackingID int) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"tracking_id": trackingID})
	return err
}

// DeleteByUserHabitIDs 级联删除指定订阅关系下的全部打卡记录
func (s *trackingRepoImpl) DeleteByUserHabitIDs(ctx context.Context, userHabitIDs []int) (int64, error) {
	if len(userHabitIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{"user_habit_id": bson.M{"$in": userHabitIDs}}
	result, err := s.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// FindViews 查询打卡记录连同订阅与习惯详情。
// date 为空串表示不过滤日期；排序为日期降序、habit_id 升序。
func (s *trackingRepoImpl) FindViews(ctx context.Context, userHabitIDs []int, date string) ([]*model.TrackingView, error) {
	if len(userHabitIDs) == 0 {
		return []*model.TrackingView{}, nil
	}

	match := bson.M{"user_habit_id": bson.M{"$in": userHabitIDs}}
	if date != "" {
		match["date"] = date
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.CollUserHabits,
			"localField":   "user_habit_id",
			"foreignField": "user_habit_id",
			"as":           "user_habit",
		}}},
		{{Key: "$unwind", Value: "$user_habit"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.CollHabits,
			"localField":   "user_habit.habit_id",
			"foreignField": "habit_id",
			"as":           "habit",
		}}},
		{{Key: "$unwind", Value: "$habit"}},
		{{Key: "$sort", Value: bson.D{
			{Key: "date", Value: -1},
			{Key: "habit.habit_id", Value: 1},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	views := make([]*model.TrackingView, 0)
	if err = cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}
