package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/models"
)

const (
	ContextUserKey    = "user"
	ContextProjectKey = "project"
)

// CurrentUser returns the identity attached by AuthMiddleware
func CurrentUser(c *gin.Context) (dto.UserResponse, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return dto.UserResponse{}, false
	}
	user, ok := value.(dto.UserResponse)
	return user, ok
}

// CurrentProject returns the project attached by ProjectOwnerMiddleware
func CurrentProject(c *gin.Context) (models.Project, bool) {
	value, exists := c.Get(ContextProjectKey)
	if !exists {
		return models.Project{}, false
	}
	project, ok := value.(models.Project)
	return project, ok
}
