package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// MaxPasswordBytes is the longest password bcrypt can hash
const MaxPasswordBytes = 72

// User represents a registered account
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:255;not null;uniqueIndex:idx_users_username"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Normalize trims surrounding whitespace from the identifying fields
func (u *User) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
}

// Validate returns every violated field rule
func (u *User) Validate() []string {
	var messages []string
	if strings.TrimSpace(u.Username) == "" {
		messages = append(messages, "Username is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		messages = append(messages, "Email is required")
	} else if err := validate.Var(u.Email, "email"); err != nil {
		messages = append(messages, "Must be a valid email address")
	}
	if u.Password == "" {
		messages = append(messages, "Password is required")
	} else if len(u.Password) > MaxPasswordBytes {
		messages = append(messages, "Password must be at most 72 bytes")
	}
	return messages
}

// BeforeSave rejects records that break the field rules
func (u *User) BeforeSave(tx *gorm.DB) error {
	return validationError(u.Validate())
}
