package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/task-management-api/apperror"
	"github.com/task-management-api/database"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/models"
	"github.com/task-management-api/repositories"
	"github.com/task-management-api/utils"
	"gorm.io/gorm"
)

const invalidCredentials = "Invalid email or password"

// AuthService handles registration and login
type AuthService struct {
	userRepo *repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (models.User, error) {
	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	user.Normalize()

	if messages := user.Validate(); len(messages) > 0 {
		return models.User{}, apperror.Validation(messages...)
	}

	// Uniqueness is reported together, as a list
	var messages []string
	usernameTaken, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		messages = append(messages, uniqueMessage("username"))
	}
	emailTaken, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, err
	}
	if emailTaken {
		messages = append(messages, uniqueMessage("email"))
	}
	if len(messages) > 0 {
		return models.User{}, apperror.Validation(messages...)
	}

	hashedPassword, err := utils.HashPassword(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashedPassword

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// Lost a race with a concurrent registration
		if column, ok := database.UniqueViolation(err); ok {
			return models.User{}, apperror.Validation(uniqueMessage(column))
		}
		return models.User{}, err
	}

	return created, nil
}

// Login authenticates a user and returns a signed access token
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return "", apperror.BadRequest("Email and password are required")
	}

	// Same message for unknown email and wrong password
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.Unauthorized(invalidCredentials)
		}
		return "", err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return "", apperror.Unauthorized(invalidCredentials)
	}

	token, _, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

func uniqueMessage(column string) string {
	if column == "" {
		return "username or email must be unique"
	}
	return column + " must be unique"
}
