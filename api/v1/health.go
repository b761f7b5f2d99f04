package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/task-management-api/database"
	"github.com/task-management-api/logger"
	"gorm.io/gorm"
)

// HealthController reports process and database liveness
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a new health controller
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// HealthCheck handles the health check endpoint
func (h *HealthController) HealthCheck(ctx *gin.Context) {
	if err := database.Ping(h.db); err != nil {
		logger.FromContext(ctx).WithError(err).Warn("Database ping failed")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "error",
			"message":  "Database unavailable",
			"database": "down",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Service is healthy",
		"database": "up",
	})
}
