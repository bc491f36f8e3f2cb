package service

import (
	"Minaret/internal/model"
	"Minaret/internal/pkg/consts"
	"Minaret/internal/pkg/redis"
	"Minaret/internal/pkg/security"
	"Minaret/internal/repository"
	"context"
	"errors"
	"time"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, tokenString string) error
	GetUserInfo(ctx context.Context, userID int) (*model.User, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	seqRepo  repository.SequenceRepo
}

func NewUserService(userRepo repository.UserRepo, seqRepo repository.SequenceRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo, seqRepo: seqRepo}
}

// Register 注册新用户并签发 Token。
// 先做占用预检给出友好报错，真正的唯一性由 email/username 唯一索引兜底，
// 并发撞车时插入返回 ErrDuplicateKey，同样转为 ErrUserExist。
func (s *UserServiceImpl) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	existing, err := s.userRepo.GetByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserExist
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	userID, err := s.seqRepo.NextID(ctx, model.CollUsers)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &model.User{
		UserID:       userID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		LastSyncAt:   now,
	}

	if err = s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, "", ErrUserExist
		}
		return nil, "", err
	}

	token, err := security.GenerateToken(userID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 校验凭据、刷新 last_sync_at 并签发 Token。
// 用户不存在与密码错误返回同一个错误，不泄露邮箱是否已注册。
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", ErrPasswordIncorrect
	}

	now := time.Now()
	if err = s.userRepo.UpdateLastSync(ctx, user.UserID, now); err != nil {
		return nil, "", err
	}
	user.LastSyncAt = now

	token, err := security.GenerateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout 将 Token 签名拉黑至其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, tokenString string) error {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, "1", security.JWTExpirationTime)
}

// GetUserInfo 获取当前用户信息
func (s *UserServiceImpl) GetUserInfo(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
