package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/task-management-api/models"
	"github.com/task-management-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every table owned by the API, parents first
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.Task{},
	}
}

// Migrate migrates the database schema
func Migrate(db *gorm.DB) error {
	logrus.Info("Migrating database schema...")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database schema migrated")
	return nil
}

// SeedPassword is the password of every seeded user
const SeedPassword = "password123"

// Seed inserts sample users, projects and tasks. It refuses to run on a
// database that already has users.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return errors.New("database already contains users, refusing to seed")
	}

	hashedPassword, err := utils.HashPassword(SeedPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Step 1: Users
		users := []models.User{
			{Username: "yoga", Email: "yoga@gmail.com", Password: hashedPassword},
			{Username: "pratama", Email: "pratama@gmail.com", Password: hashedPassword},
			{Username: "bob_wilson", Email: "bob@example.com", Password: hashedPassword},
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		logrus.Infof("Seeded %d users", len(users))

		// Step 2: Projects, one per user
		projects := []models.Project{
			{Name: "Website Redesign", Description: ptr("Redesign company website with new branding"), Status: models.ProjectStatusActive, UserID: users[0].ID},
			{Name: "Mobile App Development", Description: ptr("Build a cross-platform mobile application"), Status: models.ProjectStatusActive, UserID: users[1].ID},
			{Name: "API Integration", Description: ptr("Integrate third-party APIs into existing system"), Status: models.ProjectStatusActive, UserID: users[2].ID},
		}
		if err := tx.Omit(clause.Associations).Create(&projects).Error; err != nil {
			return fmt.Errorf("failed to seed projects: %w", err)
		}
		logrus.Infof("Seeded %d projects", len(projects))

		// Step 3: Tasks
		nextWeek := time.Now().AddDate(0, 0, 7)
		tasks := []models.Task{
			{Title: "Create wireframes", Status: models.TaskStatusDone, Priority: models.TaskPriorityHigh, ProjectID: projects[0].ID, AssignedTo: &users[0].ID},
			{Title: "Design new logo", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityMedium, ProjectID: projects[0].ID, AssignedTo: &users[1].ID},
			{Title: "Set up project repository", Status: models.TaskStatusDone, Priority: models.TaskPriorityHigh, ProjectID: projects[1].ID, AssignedTo: &users[1].ID},
			{Title: "Implement authentication flow", Status: models.TaskStatusTodo, Priority: models.TaskPriorityHigh, DueDate: &nextWeek, ProjectID: projects[1].ID},
			{Title: "Document partner endpoints", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow, ProjectID: projects[2].ID, AssignedTo: &users[2].ID},
		}
		if err := tx.Omit(clause.Associations).Create(&tasks).Error; err != nil {
			return fmt.Errorf("failed to seed tasks: %w", err)
		}
		logrus.Infof("Seeded %d tasks", len(tasks))

		return nil
	})
}

func ptr[T any](v T) *T {
	return &v
}
