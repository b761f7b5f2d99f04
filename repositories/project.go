package repositories

import (
	"context"

	"github.com/task-management-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (models.Project, error) {
	var project models.Project
	result := r.db.WithContext(ctx).First(&project, "id = ?", id)
	return project, result.Error
}

// FindByUserID retrieves all projects belonging to a user, newest first, with
// the owner summary loaded
func (r *ProjectRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).
		Preload("Owner", selectUserSummary).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(ctx context.Context, project models.Project) (models.Project, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(ctx context.Context, project models.Project) (models.Project, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(&project)
	return project, result.Error
}

// Delete removes a project together with its tasks
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete dependent tasks first so the cascade does not depend on the
		// store enforcing foreign keys
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "email")
}
