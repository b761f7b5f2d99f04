package dto

import (
	"time"

	"github.com/task-management-api/models"
)

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
}

// UpdateProjectRequest represents the request payload for updating an existing
// project; nil fields are left unchanged
type UpdateProjectRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
}

// OwnerSummary is the owner projection embedded in project responses
type OwnerSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProjectResponse represents the standard response format for a project
type ProjectResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	UserID      uint                 `json:"userId"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Owner       *OwnerSummary        `json:"owner,omitempty"`
}

// ProjectDetailResponse is a project together with its tasks
type ProjectDetailResponse struct {
	ProjectResponse
	Tasks []TaskResponse `json:"tasks"`
}

// NewProjectResponse maps a project, including the owner summary when loaded
func NewProjectResponse(project models.Project) ProjectResponse {
	response := ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		UserID:      project.UserID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
	if project.Owner != nil {
		response.Owner = &OwnerSummary{
			Username: project.Owner.Username,
			Email:    project.Owner.Email,
		}
	}
	return response
}

// NewProjectListResponse maps a list of projects
func NewProjectListResponse(projects []models.Project) []ProjectResponse {
	response := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		response = append(response, NewProjectResponse(project))
	}
	return response
}

// NewProjectDetailResponse maps a project and its tasks
func NewProjectDetailResponse(project models.Project) ProjectDetailResponse {
	return ProjectDetailResponse{
		ProjectResponse: NewProjectResponse(project),
		Tasks:           NewTaskListResponse(project.Tasks),
	}
}
