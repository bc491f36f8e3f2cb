package api

import (
	"Minaret/internal/api/middleware"
	"Minaret/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			// 无需登录即可访问的接口
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/user")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/info", group.UserHandler.GetUserInfo)
		}

		habitGroup := apiGroup.Group("/habits")
		habitGroup.Use(middleware.AuthMiddleware())
		{
			habitGroup.GET("", group.HabitHandler.ListHabits)
			habitGroup.POST("", group.HabitHandler.CreateHabit)
		}

		userHabitGroup := apiGroup.Group("/user-habits")
		userHabitGroup.Use(middleware.AuthMiddleware())
		{
			userHabitGroup.GET("", group.UserHabitHandler.ListUserHabits)
			userHabitGroup.POST("", group.UserHabitHandler.Subscribe)
			userHabitGroup.DELETE("", group.UserHabitHandler.Unsubscribe)
		}

		trackingGroup := apiGroup.Group("/tracking")
		trackingGroup.Use(middleware.AuthMiddleware())
		{
			trackingGroup.GET("", group.TrackingHandler.ListTracking)
			trackingGroup.POST("", group.TrackingHandler.Record)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware())
		{
			adminGroup.GET("/stats", group.AdminHandler.GetStats)
		}
	}

	return r
}
