package repository

import (
	"Minaret/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HabitRepo interface {
	GetByHabitID(ctx context.Context, habitID int) (*model.Habit, error)
	ListAll(ctx context.Context) ([]*model.Habit, error)
	Create(ctx context.Context, habit *model.Habit) error
	SeedDefaults(ctx context.Context, habits []model.Habit, at time.Time) error
}

type habitRepoImpl struct {
	col *mongo.Collection
}

func NewHabitRepo(db *mongo.Database) HabitRepo {
	return &habitRepoImpl{
		col: db.Collection(model.CollHabits),
	}
}

// GetByHabitID 按 habit_id 查询，不存在时返回 nil
func (s *habitRepoImpl) GetByHabitID(ctx context.Context, habitID int) (*model.Habit, error) {
	var habit model.Habit
	err := s.col.FindOne(ctx, bson.M{"habit_id": habitID}).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &habit, nil
}

// ListAll 返回全部习惯，按 habit_id 升序
func (s *habitRepoImpl) ListAll(ctx context.Context) ([]*model.Habit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "habit_id", Value: 1}})

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	habits := make([]*model.Habit, 0)
	if err = cursor.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// Create 插入自定义习惯，habit_id 唯一索引冲突转为 ErrDuplicateKey
func (s *habitRepoImpl) Create(ctx context.Context, habit *model.Habit) error {
	_, err := s.col.InsertOne(ctx, habit)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// SeedDefaults 以 habit_id 为键逐条 $setOnInsert 灌入内置目录。
// 幂等：已存在的行不会被覆盖，重复启动或并发启动都不会产生重复行。
func (s *habitRepoImpl) SeedDefaults(ctx context.Context, habits []model.Habit, at time.Time) error {
	for _, habit := range habits {
		habit.CreatedAt = at

		filter := bson.M{"habit_id": habit.HabitID}
		update := bson.M{"$setOnInsert": habit}

		_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil && !mongo.IsDuplicateKeyError(err) {
			return err
		}
	}
	return nil
}
