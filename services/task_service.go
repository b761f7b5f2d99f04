package services

import (
	"context"
	"errors"

	"github.com/task-management-api/apperror"
	"github.com/task-management-api/database"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/models"
	"github.com/task-management-api/repositories"
	"gorm.io/gorm"
)

const invalidAssignee = "assignedTo must reference an existing user"

// TaskService handles business logic for tasks. Every method works inside a
// project whose ownership has already been checked.
type TaskService struct {
	taskRepo *repositories.TaskRepository
	userRepo *repositories.UserRepository
}

// NewTaskService creates a new task service instance
func NewTaskService(taskRepo *repositories.TaskRepository, userRepo *repositories.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// ListTasks retrieves all tasks of a project, newest first
func (s *TaskService) ListTasks(ctx context.Context, projectID uint) ([]models.Task, error) {
	return s.taskRepo.FindByProjectID(ctx, projectID)
}

// GetTask retrieves a task of the project
func (s *TaskService) GetTask(ctx context.Context, projectID, taskID uint) (models.Task, error) {
	task, err := s.taskRepo.FindInProject(ctx, taskID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperror.NotFound("Task not found")
		}
		return models.Task{}, err
	}
	return task, nil
}

// CreateTask creates a task in the project; it always starts as todo
func (s *TaskService) CreateTask(ctx context.Context, projectID uint, req dto.CreateTaskRequest) (models.Task, error) {
	task := models.Task{
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		Priority:    models.TaskPriorityMedium,
		DueDate:     req.DueDate,
		ProjectID:   projectID,
		AssignedTo:  req.AssignedTo,
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	// A supplied status must still be a valid one
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := s.validate(ctx, task); err != nil {
		return models.Task{}, err
	}
	task.Status = models.TaskStatusTodo

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return models.Task{}, translateTaskError(err)
	}

	return s.GetTask(ctx, projectID, created.ID)
}

// UpdateTask applies the supplied fields to a task of the project
func (s *TaskService) UpdateTask(ctx context.Context, projectID, taskID uint, req dto.UpdateTaskRequest) (models.Task, error) {
	task, err := s.GetTask(ctx, projectID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description.Set {
		task.Description = req.Description.Value
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate.Set {
		task.DueDate = req.DueDate.Value
	}
	if req.AssignedTo.Set {
		task.AssignedTo = req.AssignedTo.Value
	}
	task.Assignee = nil

	if err := s.validate(ctx, task); err != nil {
		return models.Task{}, err
	}

	if _, err := s.taskRepo.Update(ctx, task); err != nil {
		return models.Task{}, translateTaskError(err)
	}

	// Reload so the assignee summary matches the stored assignment
	return s.GetTask(ctx, projectID, taskID)
}

// DeleteTask removes a task of the project
func (s *TaskService) DeleteTask(ctx context.Context, projectID, taskID uint) error {
	task, err := s.GetTask(ctx, projectID, taskID)
	if err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, task.ID)
}

func (s *TaskService) validate(ctx context.Context, task models.Task) error {
	messages := task.Validate()

	if task.AssignedTo != nil {
		exists, err := s.userRepo.ExistsByID(ctx, *task.AssignedTo)
		if err != nil {
			return err
		}
		if !exists {
			messages = append(messages, invalidAssignee)
		}
	}

	if len(messages) > 0 {
		return apperror.Validation(messages...)
	}
	return nil
}

// The assignee may be deleted between the check and the write
func translateTaskError(err error) error {
	if database.ForeignKeyViolation(err) {
		return apperror.Validation(invalidAssignee)
	}
	return err
}
