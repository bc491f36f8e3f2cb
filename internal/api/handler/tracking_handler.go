package handler

import (
	"Minaret/internal/api/dto"
	"Minaret/internal/pkg/response"
	"Minaret/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	trackingSvc service.TrackingService
}

func NewTrackingHandler(trackingSvc service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingSvc: trackingSvc}
}

// Record 提交单日打卡，新建返回 201，合并到已有行返回 200
func (s *TrackingHandler) Record(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req dto.RecordTrackingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	rec, created, err := s.trackingSvc.Record(c.Request.Context(), userID, req.HabitID, req.Date, req.Status, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	if created {
		response.CreatedSuccess(c, rec)
		return
	}
	response.Success(c, rec)
}

// ListTracking 查询当前用户的打卡记录，可按日期/习惯过滤
func (s *TrackingHandler) ListTracking(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.Query("date")

	habitID := 0
	if habitIDStr := c.Query("habit_id"); habitIDStr != "" {
		parsed, err := strconv.Atoi(habitIDStr)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		habitID = parsed
	}

	views, err := s.trackingSvc.ListForUser(c.Request.Context(), userID, date, habitID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}
