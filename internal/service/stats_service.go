package service

import (
	"Minaret/internal/model"
	"Minaret/internal/pkg/consts"
	"Minaret/internal/pkg/redis"
	"Minaret/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

// 统计窗口与榜单长度
const (
	statsNewUserWindowDays  = 30
	statsActiveWindowDays   = 7
	statsActivityWindowDays = 30
	statsTopHabitsLimit     = 10
)

type StatsService interface {
	GetAdminStats(ctx context.Context) (*model.StatsSnapshot, error)
	ComputeSnapshot(ctx context.Context) (*model.StatsSnapshot, error)
}

type StatsServiceImpl struct {
	statsRepo repository.StatsRepo
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepo, cacheTTL time.Duration) StatsService {
	return &StatsServiceImpl{
		statsRepo: statsRepo,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// GetAdminStats 优先读缓存快照，未命中时回源计算并回填
func (s *StatsServiceImpl) GetAdminStats(ctx context.Context) (*model.StatsSnapshot, error) {
	if rdb := redis.GetRdbClient(); rdb != nil {
		cached, err := redis.GetValue(ctx, consts.AdminStatsKey)
		if err == nil && cached != "" {
			var snapshot model.StatsSnapshot
			if err = json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	snapshot, err := s.ComputeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSnapshot(ctx, snapshot)
	return snapshot, nil
}

// ComputeSnapshot 全量计算管理端统计快照，只读不写
func (s *StatsServiceImpl) ComputeSnapshot(ctx context.Context) (*model.StatsSnapshot, error) {
	now := s.now()
	thirtyDaysAgo := now.AddDate(0, 0, -statsNewUserWindowDays)
	sevenDaysAgo := now.AddDate(0, 0, -statsActiveWindowDays)

	totalUsers, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	newUsers, err := s.statsRepo.CountUsersSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}

	// 活跃用户：近 7 天有打卡的订阅关系 → 去重后的归属用户
	activeIDs, err := s.statsRepo.ActiveUserHabitIDs(ctx, sevenDaysAgo)
	if err != nil {
		return nil, err
	}
	activeUserIDs, err := s.statsRepo.UserIDsForUserHabits(ctx, activeIDs)
	if err != nil {
		return nil, err
	}

	totalTracking, err := s.statsRepo.CountTracking(ctx)
	if err != nil {
		return nil, err
	}

	topHabits, err := s.statsRepo.TopHabits(ctx, statsTopHabitsLimit)
	if err != nil {
		return nil, err
	}

	daily, err := s.statsRepo.DailyCountsSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}

	perUser, err := s.statsRepo.HabitsPerUser(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StatsSnapshot{
		TotalUsers:           totalUsers,
		NewUsers:             newUsers,
		ActiveUsers:          int64(len(activeUserIDs)),
		TotalTrackingRecords: totalTracking,
		MostTrackedHabits:    topHabits,
		DailyActivity:        zeroFillDaily(daily, now),
		UserEngagement:       bucketEngagement(perUser),
	}, nil
}

func (s *StatsServiceImpl) cacheSnapshot(ctx context.Context, snapshot *model.StatsSnapshot) {
	if redis.GetRdbClient() == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err = redis.SetWithExpiration(ctx, consts.AdminStatsKey, string(raw), s.cacheTTL); err != nil {
		log.WarnContext(ctx, "failed to cache stats snapshot", "err", err)
	}
}

// zeroFillDaily 把按日聚合结果补齐为固定 30 天（含当天），无活动日计 0，
// 日期升序。空库也返回 30 条全零记录，保持形状稳定。
func zeroFillDaily(daily []model.DailyActivity, now time.Time) []model.DailyActivity {
	counts := make(map[string]int64, len(daily))
	for _, d := range daily {
		counts[d.Date] = d.Count
	}

	filled := make([]model.DailyActivity, 0, statsActivityWindowDays)
	for i := statsActivityWindowDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(model.DateLayout)
		filled = append(filled, model.DailyActivity{Date: date, Count: counts[date]})
	}
	return filled
}

// engagementLevel 活跃度分桶：上界包含的级联比较，>10 落入默认桶。
// 分桶边界是产品口径，不要改成均匀区间。
func engagementLevel(habitsTracked int64) string {
	switch {
	case habitsTracked <= 2:
		return "Low (1-2 habits)"
	case habitsTracked <= 5:
		return "Medium (3-5 habits)"
	case habitsTracked <= 10:
		return "High (6-10 habits)"
	default:
		return "Very High (10+ habits)"
	}
}

// bucketEngagement 按订阅数量给用户分桶，按桶内人数降序（稳定排序）
func bucketEngagement(perUser []model.UserHabitCount) []model.EngagementBucket {
	counts := make(map[string]int64)
	order := make([]string, 0, 4)

	for _, uc := range perUser {
		level := engagementLevel(uc.Count)
		if _, ok := counts[level]; !ok {
			order = append(order, level)
		}
		counts[level]++
	}

	buckets := make([]model.EngagementBucket, 0, len(order))
	for _, level := range order {
		buckets = append(buckets, model.EngagementBucket{Level: level, Users: counts[level]})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Users > buckets[j].Users
	})
	return buckets
}
