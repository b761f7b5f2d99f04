package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusInactive  ProjectStatus = "inactive"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusInactive, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project represents a work container owned by exactly one user
type Project struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"size:255;not null"`
	Description *string       `json:"description" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"size:20;not null;default:'active'"`
	UserID      uint          `json:"userId" gorm:"not null;index"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Relations
	Owner *User  `json:"owner,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Validate returns every violated field rule
func (p *Project) Validate() []string {
	var messages []string
	if strings.TrimSpace(p.Name) == "" {
		messages = append(messages, "Project name is required")
	}
	if !p.Status.Valid() {
		messages = append(messages, "Status must be active, inactive, or completed")
	}
	return messages
}

// BeforeSave rejects records that break the field rules
func (p *Project) BeforeSave(tx *gorm.DB) error {
	return validationError(p.Validate())
}
