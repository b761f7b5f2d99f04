package routes

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/task-management-api/api/v1"
	"github.com/task-management-api/apperror"
	"github.com/task-management-api/config"
	"github.com/task-management-api/logger"
	"github.com/task-management-api/middleware"
	"gorm.io/gorm"
)

// SetupRouter builds the engine with the global middleware chain and mounts
// the API under /api
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	// Backstop for panics in the logging and CORS middleware
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", logger.RequestIDHeader},
		ExposeHeaders: []string{logger.RequestIDHeader},
	}
	if origins := cfg.Origins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.ErrorHandler())
	// Panics below the translator become a JSON 500 like any other internal error
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(apperror.Internal(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	}))

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Route not found"))
	})

	api := router.Group("/api")
	v1.RegisterRoutes(api, cfg, db)

	return router
}
