package repositories

import (
	"context"

	"github.com/task-management-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindByProjectID retrieves all tasks of a project, newest first, with the
// assignee summary loaded
func (r *TaskRepository) FindByProjectID(ctx context.Context, projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	result := r.db.WithContext(ctx).
		Preload("Assignee", selectUserSummary).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&tasks)
	return tasks, result.Error
}

// FindInProject retrieves a task only if it belongs to the given project
func (r *TaskRepository) FindInProject(ctx context.Context, id, projectID uint) (models.Task, error) {
	var task models.Task
	result := r.db.WithContext(ctx).
		Preload("Assignee", selectUserSummary).
		Where("id = ? AND project_id = ?", id, projectID).
		First(&task)
	return task, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(ctx context.Context, task models.Task) (models.Task, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&task)
	return task, result.Error
}

// Update modifies an existing task
func (r *TaskRepository) Update(ctx context.Context, task models.Task) (models.Task, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(&task)
	return task, result.Error
}

// Delete removes a task from the database
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	return result.Error
}

