package v1

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/task-management-api/apperror"
)

// fail hands err to the error translator and stops the chain
func fail(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.Abort()
}

// bindJSON decodes the request body; a malformed body is a bad request
func bindJSON(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		fail(ctx, apperror.BadRequest("Invalid request body"))
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON where an empty body counts as an empty object
func bindOptionalJSON(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		fail(ctx, apperror.BadRequest("Invalid request body"))
		return false
	}
	return true
}

func respond(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}
