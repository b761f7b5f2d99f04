package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/task-management-api/config"
	"github.com/task-management-api/middleware"
	"github.com/task-management-api/repositories"
	"github.com/task-management-api/services"
	"gorm.io/gorm"
)

// projectParam names the project segment for both the project routes and
// the nested task routes; gin allows one wildcard name per segment
const projectParam = "projectId"

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, db *gorm.DB) {
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	taskRepo := repositories.NewTaskRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	projectService := services.NewProjectService(projectRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)

	// Health check endpoint
	router.GET("/health", NewHealthController(db).HealthCheck)

	// Auth endpoints
	NewUserController(authService).RegisterRoutes(router)

	// Project endpoints - protected by AuthMiddleware
	projectController := NewProjectController(projectService)
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware(tokenService, userRepo))
	{
		projectGroup.GET("", projectController.ListProjects)
		projectGroup.POST("", projectController.CreateProject)
	}

	// Single project and its tasks - protected by ownership of the project
	ownedGroup := projectGroup.Group("/:" + projectParam)
	ownedGroup.Use(middleware.ProjectOwnerMiddleware(projectRepo, projectParam))
	{
		ownedGroup.GET("", projectController.GetProject)
		ownedGroup.PUT("", projectController.UpdateProject)
		ownedGroup.DELETE("", projectController.DeleteProject)
	}
	NewTaskController(taskService).RegisterRoutes(ownedGroup)
}
