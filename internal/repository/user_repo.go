package repository

import (
	"Minaret/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	GetByUserID(ctx context.Context, userID int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdateLastSync(ctx context.Context, userID int, at time.Time) error
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection(model.CollUsers),
	}
}

// GetByUserID 按代理主键查询用户，不存在时返回 nil
func (s *userRepoImpl) GetByUserID(ctx context.Context, userID int) (*model.User, error) {
	return s.findOne(ctx, bson.M{"user_id": userID})
}

// GetByEmail 按邮箱查询用户，不存在时返回 nil
func (s *userRepoImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// GetByEmailOrUsername 注册前的占用检查
func (s *userRepoImpl) GetByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}
	return s.findOne(ctx, filter)
}

// Create 插入新用户，邮箱/用户名唯一索引冲突转为 ErrDuplicateKey
func (s *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	_, err := s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// UpdateLastSync 更新最近同步时间
func (s *userRepoImpl) UpdateLastSync(ctx context.Context, userID int, at time.Time) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"last_sync_at": at}}
	_, err := s.col.UpdateOne(ctx, filter, update)
	return err
}

func (s *userRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
