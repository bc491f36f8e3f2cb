package job

import (
	"Minaret/internal/pkg/consts"
	"Minaret/internal/pkg/logger"
	"Minaret/internal/pkg/redis"
	"Minaret/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// StatsWarmJob 周期性预计算管理端统计快照并写入缓存，
// 让 /admin/stats 常态下命中缓存而不是现算。
type StatsWarmJob struct {
	statsSvc service.StatsService
	cacheTTL time.Duration
}

func NewStatsWarmJob(statsSvc service.StatsService, cacheTTL time.Duration) *StatsWarmJob {
	return &StatsWarmJob{
		statsSvc: statsSvc,
		cacheTTL: cacheTTL,
	}
}

func (s *StatsWarmJob) Run() {
	traceID := "job-stats-warm-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	started := time.Now()
	snapshot, err := s.statsSvc.ComputeSnapshot(ctx)
	if err != nil {
		log.ErrorContext(ctx, "compute stats snapshot error", "err", err)
		return
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		log.ErrorContext(ctx, "marshal stats snapshot error", "err", err)
		return
	}
	if err = redis.SetWithExpiration(ctx, consts.AdminStatsKey, string(raw), s.cacheTTL); err != nil {
		log.ErrorContext(ctx, "cache stats snapshot error", "err", err)
		return
	}

	log.InfoContext(ctx, "StatsWarmJob finished",
		"total_users", snapshot.TotalUsers,
		"total_tracking", snapshot.TotalTrackingRecords,
		"cost", time.Since(started).String())
}
