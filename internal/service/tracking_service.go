package service

import (
	"Minaret/internal/model"
	"Minaret/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type TrackingService interface {
	Record(ctx context.Context, userID, habitID int, date, status, note string) (*model.Tracking, bool, error)
	ListForUser(ctx context.Context, userID int, date string, habitID int) ([]*model.TrackingView, error)
}

type TrackingServiceImpl struct {
	trackingRepo  repository.TrackingRepo
	userHabitRepo repository.UserHabitRepo
	seqRepo       repository.SequenceRepo
}

func NewTrackingService(
	trackingRepo repository.TrackingRepo,
	userHabitRepo repository.UserHabitRepo,
	seqRepo repository.SequenceRepo,
) TrackingService {
	return &TrackingServiceImpl{
		trackingRepo:  trackingRepo,
		userHabitRepo: userHabitRepo,
		seqRepo:       seqRepo,
	}
}

// Record 合并一次单日打卡提交（离线优先，字段级 latest-write-wins）。
//
// 同一 (订阅, 日期) 永远至多一行：创建与合并走同一个条件 upsert，
// 第二次提交必然落在已有行上并返回 created=false。
//
// tracking_id 在写入前预分配；若实际落到更新分支，这个 id 作废（允许空洞）。
//
// 与并发退订的竞争按 "删除胜出" 处理：写入后复查订阅仍在，
// 若已被退订则回收刚写入的行并报 ErrHabitNotTracked。
// 两个执行顺序都不会留下引用已删订阅的孤儿行。
func (s *TrackingServiceImpl) Record(ctx context.Context, userID, habitID int, date, status, note string) (*model.Tracking, bool, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, false, ErrDateInvalid
	}
	if !model.IsValidStatus(status) {
		return nil, false, ErrStatusInvalid
	}

	userHabit, err := s.userHabitRepo.GetByUserAndHabit(ctx, userID, habitID)
	if err != nil {
		return nil, false, err
	}
	if userHabit == nil {
		return nil, false, ErrHabitNotTracked
	}

	trackingID, err := s.seqRepo.NextID(ctx, model.CollTracking)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	rec := &model.Tracking{
		TrackingID:  trackingID,
		UserHabitID: userHabit.UserHabitID,
		Date:        date,
		Status:      status,
		Note:        note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	out, created, err := s.trackingRepo.Upsert(ctx, rec)
	if err != nil {
		return nil, false, err
	}

	// 复查订阅：退订与本次写入交错时删除胜出
	still, err := s.userHabitRepo.GetByUserHabitID(ctx, userHabit.UserHabitID)
	if err != nil {
		return nil, false, err
	}
	if still == nil {
		if delErr := s.trackingRepo.DeleteByTrackingID(ctx, out.TrackingID); delErr != nil {
			log.ErrorContext(ctx, "failed to reclaim orphan tracking row",
				"tracking_id", out.TrackingID, "err", delErr)
		}
		return nil, false, ErrHabitNotTracked
	}

	return out, created, nil
}

// ListForUser 查询用户自己的打卡记录，按日期降序、habit_id 升序。
// habitID 为 0 表示不过滤；过滤一个未订阅的 habit_id 返回空列表而非报错
// （区分 "没有数据" 与 "请求有误"）。
func (s *TrackingServiceImpl) ListForUser(ctx context.Context, userID int, date string, habitID int) ([]*model.TrackingView, error) {
	if date != "" {
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			return nil, ErrDateInvalid
		}
	}

	userHabits, err := s.userHabitRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(userHabits))
	if habitID != 0 {
		for _, uh := range userHabits {
			if uh.HabitID == habitID {
				ids = append(ids, uh.UserHabitID)
				break
			}
		}
		if len(ids) == 0 {
			return []*model.TrackingView{}, nil
		}
	} else {
		for _, uh := range userHabits {
			ids = append(ids, uh.UserHabitID)
		}
	}

	return s.trackingRepo.FindViews(ctx, ids, date)
}
