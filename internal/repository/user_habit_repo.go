package repository

import (
	"Minaret/internal/model"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserHabitRepo interface {
	GetByUserAndHabit(ctx context.Context, userID, habitID int) (*model.UserHabit, error)
	GetByUserHabitID(ctx context.Context, userHabitID int) (*model.UserHabit, error)
	ListByUser(ctx context.Context, userID int) ([]*model.UserHabit, error)
	ListWithHabits(ctx context.Context, userID int) ([]*model.UserHabitWithHabit, error)
	Create(ctx context.Context, userHabit *model.UserHabit) error
	DeleteByUserAndHabit(ctx context.Context, userID, habitID int) (*model.UserHabit, error)
}

type userHabitRepoImpl struct {
	col *mongo.Collection
}

func NewUserHabitRepo(db *mongo.Database) UserHabitRepo {
	return &userHabitRepoImpl{
		col: db.Collection(model.CollUserHabits),
	}
}

// GetByUserAndHabit 查询订阅关系，不存在时返回 nil
func (s *userHabitRepoImpl) GetByUserAndHabit(ctx context.Context, userID, habitID int) (*model.UserHabit, error) {
	filter := bson.M{"user_id": userID, "habit_id": habitID}
	return s.findOne(ctx, filter)
}

// GetByUserHabitID 按代理主键查询订阅关系，不存在时返回 nil
func (s *userHabitRepoImpl) GetByUserHabitID(ctx context.Context, userHabitID int) (*model.UserHabit, error) {
	return s.findOne(ctx, bson.M{"user_habit_id": userHabitID})
}

// ListByUser 返回用户的全部订阅关系（不带习惯详情）
func (s *userHabitRepoImpl) ListByUser(ctx context.Context, userID int) ([]*model.UserHabit, error) {
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*model.UserHabit, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListWithHabits 返回用户的订阅关系连同习惯详情，按 habit_id 升序
func (s *userHabitRepoImpl) ListWithHabits(ctx context.Context, userID int) ([]*model.UserHabitWithHabit, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.CollHabits,
			"localField":   "habit_id",
			"foreignField": "habit_id",
			"as":           "habit",
		}}},
		{{Key: "$unwind", Value: "$habit"}},
		{{Key: "$sort", Value: bson.D{{Key: "habit.habit_id", Value: 1}}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*model.UserHabitWithHabit, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create 插入订阅关系，(user_id, habit_id) 唯一索引冲突转为 ErrDuplicateKey
func (s *userHabitRepoImpl) Create(ctx context.Context, userHabit *model.UserHabit) error {
	_, err := s.col.InsertOne(ctx, userHabit)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// DeleteByUserAndHabit 删除订阅关系并返回被删除的文档。
// 级联删除依赖这里捕获到的 user_habit_id，绝不能在删除后重查推导。
// 不存在时返回 nil。
func (s *userHabitRepoImpl) DeleteByUserAndHabit(ctx context.Context, userID, habitID int) (*model.UserHabit, error) {
	filter := bson.M{"user_id": userID, "habit_id": habitID}

	var deleted model.UserHabit
	err := s.col.FindOneAndDelete(ctx, filter).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &deleted, nil
}

func (s *userHabitRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.UserHabit, error) {
	var userHabit model.UserHabit
	err := s.col.FindOne(ctx, filter).Decode(&userHabit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &userHabit, nil
}
