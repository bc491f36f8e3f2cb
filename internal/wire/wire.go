package wire

import (
	"Minaret/internal/api"
	"Minaret/internal/api/config"
	"Minaret/internal/api/handler"
	"Minaret/internal/job"
	"Minaret/internal/model"
	"Minaret/internal/pkg/cron"
	"Minaret/internal/repository"
	"Minaret/internal/service"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *mongo.Database
	CronMgr  *cron.Manager
	habitSvc service.HabitService
	seqRepo  repository.SequenceRepo
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	seqRepo := repository.NewSequenceRepo(db)
	userRepo := repository.NewUserRepo(db)
	habitRepo := repository.NewHabitRepo(db)
	userHabitRepo := repository.NewUserHabitRepo(db)
	trackingRepo := repository.NewTrackingRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	cacheTTL := time.Duration(cfg.Stats.CacheTTLSeconds) * time.Second

	userService := service.NewUserService(userRepo, seqRepo)
	habitService := service.NewHabitService(habitRepo, seqRepo)
	userHabitService := service.NewUserHabitService(userHabitRepo, habitRepo, trackingRepo, seqRepo)
	trackingService := service.NewTrackingService(trackingRepo, userHabitRepo, seqRepo)
	statsService := service.NewStatsService(statsRepo, cacheTTL)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		HabitHandler:     handler.NewHabitHandler(habitService),
		UserHabitHandler: handler.NewUserHabitHandler(userHabitService),
		TrackingHandler:  handler.NewTrackingHandler(trackingService),
		AdminHandler:     handler.NewAdminHandler(statsService),
	}

	router := api.SetupRouter(handlers)
	cronMgr := cron.NewCronManager(job.NewStatsWarmJob(statsService, cacheTTL))

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		CronMgr:  cronMgr,
		habitSvc: habitService,
		seqRepo:  seqRepo,
	}, nil
}

// Bootstrap 灌入内置习惯目录并把各集合的 ID 计数器抬到当前观测最大值。
// 目录段 1~15 为保留段，habits 计数器下限为 15。
func (s *ApplicationContainer) Bootstrap(ctx context.Context) error {
	if err := s.habitSvc.SeedDefaults(ctx); err != nil {
		return err
	}

	syncs := []struct {
		collection string
		idField    string
		floor      int
	}{
		{model.CollUsers, "user_id", 0},
		{model.CollHabits, "habit_id", model.SeededHabitMaxID},
		{model.CollUserHabits, "user_habit_id", 0},
		{model.CollTracking, "tracking_id", 0},
	}
	for _, sc := range syncs {
		if err := s.seqRepo.Sync(ctx, sc.collection, sc.idField, sc.floor); err != nil {
			return err
		}
	}
	return nil
}
