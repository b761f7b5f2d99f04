package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/task-management-api/apperror"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/models"
	"gorm.io/gorm"
)

const bearerPrefix = "Bearer "

// TokenValidator verifies a bearer token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*dto.TokenClaims, error)
}

// UserFinder loads a user by id
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (models.User, error)
}

// AuthMiddleware resolves the bearer token to a persisted user and attaches
// the user's public projection to the context. It never writes to the store.
func AuthMiddleware(tokens TokenValidator, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abort(c, apperror.Unauthorized("Authentication required"))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			abort(c, apperror.Unauthorized("Authentication required"))
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			abort(c, apperror.Unauthorized("Invalid or expired token"))
			return
		}

		userID, err := claims.SubjectID()
		if err != nil {
			abort(c, apperror.Unauthorized("Invalid or expired token"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abort(c, apperror.Unauthorized("User not found"))
				return
			}
			abort(c, err)
			return
		}

		c.Set(ContextUserKey, dto.NewUserResponse(user))
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
