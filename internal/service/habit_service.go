package service

import (
	"Minaret/internal/model"
	"Minaret/internal/repository"
	"context"
	"errors"
	"time"
)

type HabitService interface {
	ListHabits(ctx context.Context) ([]*model.Habit, error)
	CreateCustomHabit(ctx context.Context, title, emoji, color, repeatFrequency string) (*model.Habit, error)
	SeedDefaults(ctx context.Context) error
}

type HabitServiceImpl struct {
	habitRepo repository.HabitRepo
	seqRepo   repository.SequenceRepo
}

func NewHabitService(habitRepo repository.HabitRepo, seqRepo repository.SequenceRepo) HabitService {
	return &HabitServiceImpl{habitRepo: habitRepo, seqRepo: seqRepo}
}

// ListHabits 返回完整习惯目录，按 habit_id 升序
func (s *HabitServiceImpl) ListHabits(ctx context.Context) ([]*model.Habit, error) {
	return s.habitRepo.ListAll(ctx)
}

// CreateCustomHabit 创建自定义习惯。
// habits 计数器的下限是 15，自定义习惯的 id 必然从 16 起分配，
// 不会侵占内置目录的 id 区间。
func (s *HabitServiceImpl) CreateCustomHabit(ctx context.Context, title, emoji, color, repeatFrequency string) (*model.Habit, error) {
	if !model.IsValidRepeatFrequency(repeatFrequency) {
		return nil, ErrFrequencyInvalid
	}

	habitID, err := s.seqRepo.NextID(ctx, model.CollHabits)
	if err != nil {
		return nil, err
	}

	habit := &model.Habit{
		HabitID:         habitID,
		Title:           title,
		Emoji:           emoji,
		Color:           color,
		Type:            model.HabitTypeCustom,
		Category:        "Custom",
		RepeatFrequency: repeatFrequency,
		CreatedAt:       time.Now(),
	}

	if err = s.habitRepo.Create(ctx, habit); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, UnExpectedError
		}
		return nil, err
	}
	return habit, nil
}

// SeedDefaults 幂等灌入内置习惯目录（1~15）
func (s *HabitServiceImpl) SeedDefaults(ctx context.Context) error {
	return s.habitRepo.SeedDefaults(ctx, model.DefaultHabits, time.Now())
}
