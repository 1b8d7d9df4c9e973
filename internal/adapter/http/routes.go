package http

import (
	"github.com/gin-gonic/gin"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/handlers"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Upload  *handlers.UploadHandler
	Users   *handlers.UserHandler
	Tasks   *handlers.TaskHandler
	Reports *handlers.ReportHandler
}

func RegisterRoutes(r *gin.Engine, authMiddleware *middleware.AuthMiddleware, h Handlers, uploadDir string) {
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/profile", authMiddleware.Protect(), h.Auth.GetProfile)
			auth.PUT("/profile", authMiddleware.Protect(), h.Auth.UpdateProfile)
			auth.POST("/upload-image", h.Upload.UploadImage)
		}

		users := api.Group("/users", authMiddleware.Protect())
		{
			users.GET("", authMiddleware.AdminOnly(), h.Users.ListMembers)
			users.GET("/:id", h.Users.GetUserByID)
		}

		tasks := api.Group("/tasks", authMiddleware.Protect())
		{
			tasks.GET("/dashboard-data", h.Tasks.GetDashboardData)
			tasks.GET("/user-dashboard-data", h.Tasks.GetUserDashboardData)
			tasks.GET("", h.Tasks.ListTasks)
			tasks.GET("/:id", h.Tasks.GetTaskByID)
			tasks.POST("", authMiddleware.AdminOnly(), h.Tasks.CreateTask)
			tasks.PUT("/:id", h.Tasks.UpdateTask)
			tasks.DELETE("/:id", authMiddleware.AdminOnly(), h.Tasks.DeleteTask)
			tasks.PUT("/:id/status", h.Tasks.UpdateTaskStatus)
			tasks.PUT("/:id/todo", h.Tasks.UpdateTaskChecklist)
		}

		reports := api.Group("/reports", authMiddleware.Protect(), authMiddleware.AdminOnly())
		{
			reports.GET("/export/tasks", h.Reports.ExportTasksReport)
			reports.GET("/export/user", h.Reports.ExportUsersReport)
		}
	}
}
