package services

import (
	"context"
	"errors"

	"github.com/task-management-api/apperror"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/models"
	"github.com/task-management-api/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects. Ownership has already
// been checked by the time a project is passed in.
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	taskRepo    *repositories.TaskRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo *repositories.ProjectRepository, taskRepo *repositories.TaskRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// ListProjects retrieves the owner's projects, newest first
func (s *ProjectService) ListProjects(ctx context.Context, userID uint) ([]models.Project, error) {
	return s.projectRepo.FindByUserID(ctx, userID)
}

// GetProjectDetail completes an already loaded project with its owner and tasks
func (s *ProjectService) GetProjectDetail(ctx context.Context, project models.Project, owner models.User) (models.Project, error) {
	tasks, err := s.taskRepo.FindByProjectID(ctx, project.ID)
	if err != nil {
		return models.Project{}, err
	}

	project.Owner = &owner
	project.Tasks = tasks
	return project, nil
}

// CreateProject creates a new project owned by userID
func (s *ProjectService) CreateProject(ctx context.Context, userID uint, req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Description: req.Description,
		Status:      models.ProjectStatusActive,
		UserID:      userID,
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	if messages := project.Validate(); len(messages) > 0 {
		return models.Project{}, apperror.Validation(messages...)
	}

	return s.projectRepo.Create(ctx, project)
}

// UpdateProject applies the supplied fields to an already loaded project
func (s *ProjectService) UpdateProject(ctx context.Context, project models.Project, req dto.UpdateProjectRequest) (models.Project, error) {
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	if messages := project.Validate(); len(messages) > 0 {
		return models.Project{}, apperror.Validation(messages...)
	}

	return s.projectRepo.Update(ctx, project)
}

// DeleteProject removes a project and its tasks
func (s *ProjectService) DeleteProject(ctx context.Context, project models.Project) error {
	err := s.projectRepo.Delete(ctx, project.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Project not found")
	}
	return err
}
