package handler

import (
	"Minaret/internal/pkg/response"
	"Minaret/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statsSvc service.StatsService
}

func NewAdminHandler(statsSvc service.StatsService) *AdminHandler {
	return &AdminHandler{statsSvc: statsSvc}
}

// GetStats 获取管理端统计快照
func (s *AdminHandler) GetStats(c *gin.Context) {
	snapshot, err := s.statsSvc.GetAdminStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, snapshot)
}
