package handler

import (
	"Minaret/internal/api/dto"
	"Minaret/internal/model"
	"Minaret/internal/pkg/response"
	"Minaret/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register 注册
func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, token, err := s.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, dto.AuthResultDTO{
		User:  toUserDTO(user),
		Token: token,
	})
}

// Login 登录
func (s *UserHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, token, err := s.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AuthResultDTO{
		User:  toUserDTO(user),
		Token: token,
	})
}

// Logout 注销当前 Token
func (s *UserHandler) Logout(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := s.userSvc.Logout(c.Request.Context(), tokenString); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetUserInfo 获取当前用户信息
func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toUserDTO(user))
}

func toUserDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		CreatedAt:  user.CreatedAt,
		LastSyncAt: user.LastSyncAt,
	}
}
