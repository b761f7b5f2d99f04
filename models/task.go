package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// TaskStatus represents the progress of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known statuses
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the known priorities
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work inside a project. Access is derived from the
// project's owner; the assignee grants nothing.
type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description *string      `json:"description" gorm:"type:text"`
	Status      TaskStatus   `json:"status" gorm:"size:20;not null;default:'todo'"`
	Priority    TaskPriority `json:"priority" gorm:"size:20;not null;default:'medium'"`
	DueDate     *time.Time   `json:"dueDate"`
	ProjectID   uint         `json:"projectId" gorm:"not null;index"`
	AssignedTo  *uint        `json:"assignedTo" gorm:"index"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Relations
	Assignee *User `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// Validate returns every violated field rule
func (t *Task) Validate() []string {
	var messages []string
	if strings.TrimSpace(t.Title) == "" {
		messages = append(messages, "Task title is required")
	}
	if !t.Status.Valid() {
		messages = append(messages, "Status must be todo, in_progress, or done")
	}
	if !t.Priority.Valid() {
		messages = append(messages, "Priority must be low, medium, or high")
	}
	return messages
}

// BeforeSave rejects records that break the field rules
func (t *Task) BeforeSave(tx *gorm.DB) error {
	return validationError(t.Validate())
}
