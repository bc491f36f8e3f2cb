package service

import (
	"Minaret/internal/model"
	"Minaret/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
)

type UserHabitService interface {
	Subscribe(ctx context.Context, userID, habitID int) (*model.UserHabitWithHabit, error)
	Unsubscribe(ctx context.Context, userID, habitID int) error
	ListForUser(ctx context.Context, userID int) ([]*model.UserHabitWithHabit, error)
}

type UserHabitServiceImpl struct {
	userHabitRepo repository.UserHabitRepo
	habitRepo     repository.HabitRepo
	trackingRepo  repository.TrackingRepo
	seqRepo       repository.SequenceRepo
}

func NewUserHabitService(
	userHabitRepo repository.UserHabitRepo,
	habitRepo repository.HabitRepo,
	trackingRepo repository.TrackingRepo,
	seqRepo repository.SequenceRepo,
) UserHabitService {
	return &UserHabitServiceImpl{
		userHabitRepo: userHabitRepo,
		habitRepo:     habitRepo,
		trackingRepo:  trackingRepo,
		seqRepo:       seqRepo,
	}
}

// Subscribe 将习惯加入用户的打卡列表。
// 预检给出友好报错；(user_id, habit_id) 唯一索引兜底并发重复订阅，
// 撞车方收到 ErrDuplicateKey 并转为 ErrHabitAlreadyTracked。
func (s *UserHabitServiceImpl) Subscribe(ctx context.Context, userID, habitID int) (*model.UserHabitWithHabit, error) {
	habit, err := s.habitRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	existing, err := s.userHabitRepo.GetByUserAndHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrHabitAlreadyTracked
	}

	userHabitID, err := s.seqRepo.NextID(ctx, model.CollUserHabits)
	if err != nil {
		return nil, err
	}

	userHabit := &model.UserHabit{
		UserHabitID: userHabitID,
		UserID:      userID,
		HabitID:     habitID,
		AddedAt:     time.Now(),
	}

	if err = s.userHabitRepo.Create(ctx, userHabit); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrHabitAlreadyTracked
		}
		return nil, err
	}

	return &model.UserHabitWithHabit{UserHabit: *userHabit, Habit: *habit}, nil
}

// Unsubscribe 将习惯移出打卡列表并级联删除其全部打卡记录。
// 级联使用删除瞬间捕获的 user_habit_id，而不是删除后重查推导——
// 订阅行一旦消失就再也查不回它的 id 了。
// 与并发提交打卡的竞争按 "删除胜出" 处理（另一侧见 TrackingService.Record）。
func (s *UserHabitServiceImpl) Unsubscribe(ctx context.Context, userID, habitID int) error {
	deleted, err := s.userHabitRepo.DeleteByUserAndHabit(ctx, userID, habitID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return ErrHabitNotTracked
	}

	removed, err := s.trackingRepo.DeleteByUserHabitIDs(ctx, []int{deleted.UserHabitID})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "user habit unsubscribed",
		"user_id", userID,
		"habit_id", habitID,
		"user_habit_id", deleted.UserHabitID,
		"tracking_removed", removed,
	)
	return nil
}

// ListForUser 返回用户的打卡列表连同习惯详情，按 habit_id 升序
func (s *UserHabitServiceImpl) ListForUser(ctx context.Context, userID int) ([]*model.UserHabitWithHabit, error) {
	return s.userHabitRepo.ListWithHabits(ctx, userID)
}
