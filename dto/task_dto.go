package dto

import (
	"time"

	"github.com/task-management-api/models"
)

// CreateTaskRequest represents the request payload for creating a task.
// Status is validated but ignored; tasks always start as todo.
type CreateTaskRequest struct {
	Title       *string              `json:"title"`
	Status      *models.TaskStatus   `json:"status"`
	Description *string              `json:"description"`
	Priority    *models.TaskPriority `json:"priority"`
	DueDate     *time.Time           `json:"dueDate"`
	AssignedTo  *uint                `json:"assignedTo"`
}

// UpdateTaskRequest represents a partial task update. Description, DueDate
// and AssignedTo distinguish an explicit null (clear) from an absent field.
type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description Optional[string]     `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	Priority    *models.TaskPriority `json:"priority"`
	DueDate     Optional[time.Time]  `json:"dueDate"`
	AssignedTo  Optional[uint]       `json:"assignedTo"`
}

// AssigneeSummary is the assignee projection embedded in task responses
type AssigneeSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TaskResponse represents the standard response format for a task
type TaskResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"dueDate"`
	ProjectID   uint                `json:"projectId"`
	AssignedTo  *uint               `json:"assignedTo"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Assignee    *AssigneeSummary    `json:"assignee"`
}

// NewTaskResponse maps a task, including the assignee summary when loaded
func NewTaskResponse(task models.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID,
		AssignedTo:  task.AssignedTo,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Assignee != nil {
		response.Assignee = &AssigneeSummary{
			ID:       task.Assignee.ID,
			Username: task.Assignee.Username,
			Email:    task.Assignee.Email,
		}
	}
	return response
}

// NewTaskListResponse maps a list of tasks
func NewTaskListResponse(tasks []models.Task) []TaskResponse {
	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, NewTaskResponse(task))
	}
	return response
}
