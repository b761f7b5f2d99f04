package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/task-management-api/apperror"
	"github.com/task-management-api/logger"
)

// ErrorHandler is the single place where failures become HTTP responses.
// Handlers and middleware record an error with c.Error and abort; the last
// recorded error decides the status and the body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apperror.As(c.Errors.Last().Err)
		if appErr.Kind == apperror.KindInternal {
			logger.FromContext(c).WithError(appErr.Unwrap()).Error("Unhandled error")
		}

		if c.Writer.Written() {
			return
		}

		c.JSON(appErr.Status(), gin.H{
			"status":  "error",
			"message": appErr.Body(),
		})
	}
}
