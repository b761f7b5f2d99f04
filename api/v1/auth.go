package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/services"
)

// UserController handles registration and login
type UserController struct {
	authService *services.AuthService
}

// NewUserController creates a new user controller
func NewUserController(authService *services.AuthService) *UserController {
	return &UserController{authService: authService}
}

// RegisterRoutes registers the public auth routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", c.Register)
	router.POST("/login", c.Login)
}

// Register handles user registration
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "User registered successfully", dto.NewUserResponse(user))
}

// Login handles user authentication
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Status:      "success",
		Message:     "Login successful",
		AccessToken: token,
	})
}
