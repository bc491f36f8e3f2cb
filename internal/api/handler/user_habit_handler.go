package handler

import (
	"Minaret/internal/api/dto"
	"Minaret/internal/pkg/response"
	"Minaret/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHabitHandler struct {
	userHabitSvc service.UserHabitService
}

func NewUserHabitHandler(userHabitSvc service.UserHabitService) *UserHabitHandler {
	return &UserHabitHandler{userHabitSvc: userHabitSvc}
}

// ListUserHabits 获取当前用户的打卡列表
func (s *UserHabitHandler) ListUserHabits(c *gin.Context) {
	userID := c.GetInt("user_id")

	list, err := s.userHabitSvc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Subscribe 添加打卡习惯
func (s *UserHabitHandler) Subscribe(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req dto.SubscribeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	userHabit, err := s.userHabitSvc.Subscribe(c.Request.Context(), userID, req.HabitID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, userHabit)
}

// Unsubscribe 移除打卡习惯并级联删除其打卡记录
func (s *UserHabitHandler) Unsubscribe(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req dto.SubscribeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userHabitSvc.Unsubscribe(c.Request.Context(), userID, req.HabitID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
