package api

import "Minaret/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	HabitHandler     *handler.HabitHandler
	UserHabitHandler *handler.UserHabitHandler
	TrackingHandler  *handler.TrackingHandler
	AdminHandler     *handler.AdminHandler
}
