package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/task-management-api/apperror"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/middleware"
	"github.com/task-management-api/models"
	"github.com/task-management-api/services"
)

var errNoProjectInContext = errors.New("project missing from request context")

// ProjectController handles project endpoints. Everything below
// /projects/:projectId runs behind the ownership guard.
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// ListProjects returns the caller's projects, newest first
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, apperror.Unauthorized("Authentication required"))
		return
	}

	projects, err := c.projectService.ListProjects(ctx.Request.Context(), user.ID)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Projects retrieved successfully", dto.NewProjectListResponse(projects))
}

// GetProject returns the project with its owner and tasks
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, ok := currentProject(ctx)
	if !ok {
		return
	}
	user, _ := middleware.CurrentUser(ctx)

	// The guard guarantees the caller is the owner
	owner := models.User{ID: user.ID, Username: user.Username, Email: user.Email}
	detail, err := c.projectService.GetProjectDetail(ctx.Request.Context(), project, owner)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Project retrieved successfully", dto.NewProjectDetailResponse(detail))
}

// CreateProject creates a project owned by the caller
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		fail(ctx, apperror.Unauthorized("Authentication required"))
		return
	}

	var req dto.CreateProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), user.ID, req)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "Project created successfully", dto.NewProjectResponse(project))
}

// UpdateProject applies a partial update
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	project, ok := currentProject(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := c.projectService.UpdateProject(ctx.Request.Context(), project, req)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Project updated successfully", dto.NewProjectResponse(updated))
}

// DeleteProject removes the project and its tasks
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	project, ok := currentProject(ctx)
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(ctx.Request.Context(), project); err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

func currentProject(ctx *gin.Context) (models.Project, bool) {
	project, ok := middleware.CurrentProject(ctx)
	if !ok {
		fail(ctx, apperror.Internal(errNoProjectInContext))
	}
	return project, ok
}
