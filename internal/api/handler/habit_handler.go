package handler

import (
	"Minaret/internal/api/dto"
	"Minaret/internal/pkg/response"
	"Minaret/internal/service"

	"github.com/gin-gonic/gin"
)

type HabitHandler struct {
	habitSvc service.HabitService
}

func NewHabitHandler(habitSvc service.HabitService) *HabitHandler {
	return &HabitHandler{habitSvc: habitSvc}
}

// ListHabits 获取完整习惯目录
func (s *HabitHandler) ListHabits(c *gin.Context) {
	habits, err := s.habitSvc.ListHabits(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, habits)
}

// CreateHabit 创建自定义习惯
func (s *HabitHandler) CreateHabit(c *gin.Context) {
	var req dto.CreateHabitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	habit, err := s.habitSvc.CreateCustomHabit(c.Request.Context(), req.Title, req.Emoji, req.Color, req.RepeatFrequency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, habit)
}
