package middleware

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/task-management-api/apperror"
	"github.com/task-management-api/models"
	"gorm.io/gorm"
)

// ProjectFinder loads a project by id
type ProjectFinder interface {
	FindByID(ctx context.Context, id uint) (models.Project, error)
}

// ProjectOwnerMiddleware is the authorization boundary for a project and
// everything nested under it. It loads the project named by the path
// parameter param, requires the authenticated user to own it and attaches it
// to the context. Must run after AuthMiddleware.
//
// Existence is checked before ownership, so a missing project is always 404.
func ProjectOwnerMiddleware(projects ProjectFinder, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, apperror.Unauthorized("Authentication required"))
			return
		}

		projectID, ok := ParseID(c.Param(param))
		if !ok {
			abort(c, apperror.NotFound("Project not found"))
			return
		}

		project, err := projects.FindByID(c.Request.Context(), projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abort(c, apperror.NotFound("Project not found"))
				return
			}
			abort(c, err)
			return
		}

		if project.UserID != user.ID {
			abort(c, apperror.Forbidden("You are not authorized to access this project"))
			return
		}

		c.Set(ContextProjectKey, project)
		c.Next()
	}
}

// ParseID parses a positive integer path id
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
