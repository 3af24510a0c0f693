package app

import (
	"learnplay_backend/docs"
	"learnplay_backend/internal/config"
	"learnplay_backend/internal/middleware"
	"learnplay_backend/internal/model"
	"learnplay_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 课程和测验目录允许匿名浏览，带令牌时附上完成标记
	browse := router.Group("/api")
	browse.Use(middleware.TryAuthMiddleware(cfg))
	{
		browse.GET("/lessons", c.lesson.List)
		browse.GET("/lessons/:id", c.lesson.Get)
		browse.GET("/quizzes", c.quiz.List)
		browse.GET("/quizzes/:id", c.quiz.Get)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)
		authGroup.POST("/users/avatar", c.user.UploadAvatar)

		authGroup.GET("/dashboard", c.dashboard.Overview)

		// 课程
		authGroup.POST("/lessons/:id/complete", c.lesson.Complete)

		// 测验
		authGroup.POST("/quizzes/:id/submit", c.quiz.Submit)

		// 自适应练习
		authGroup.POST("/practice/sessions", c.practice.Start)
		authGroup.GET("/practice/sessions", c.practice.Recent)
		authGroup.GET("/practice/sessions/:id", c.practice.Get)
		authGroup.POST("/practice/sessions/:id/attempts", c.practice.SubmitAttempt)
		authGroup.POST("/practice/sessions/:id/finish", c.practice.Finish)

		// 游戏化账本
		authGroup.GET("/gamification/profile", c.gamification.Profile)
		authGroup.POST("/gamification/checkin", c.gamification.CheckIn)
		authGroup.GET("/gamification/history", c.gamification.History)

		// 徽章与排行榜
		authGroup.GET("/badges", c.badge.List)
		authGroup.GET("/badges/leaderboard", c.badge.Leaderboard)

		// 教师/管理员接口
		teacherGroup := authGroup.Group("")
		teacherGroup.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
		{
			teacherGroup.POST("/lessons", c.lesson.Create)
			teacherGroup.POST("/lessons/:id/video", c.lesson.UploadVideo)
		}

		// 管理员接口
		adminGroup := authGroup.Group("/admin")
		adminGroup.Use(middleware.RoleMiddleware(model.Admin))
		{
			adminGroup.GET("/users", c.user.List)
			adminGroup.PUT("/users/:id/disabled", c.user.SetDisabled)
		}
	}
}
