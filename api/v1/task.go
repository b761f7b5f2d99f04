package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/task-management-api/apperror"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/middleware"
	"github.com/task-management-api/services"
)

// TaskController handles the tasks of a project. Access is decided by the
// ownership guard on the parent project; the task itself is looked up here.
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a new task controller
func NewTaskController(taskService *services.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

// RegisterRoutes registers task routes on a group already guarded by
// project ownership
func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", c.ListTasks)
		tasks.POST("", c.CreateTask)
		tasks.GET("/:taskId", c.GetTask)
		tasks.PUT("/:taskId", c.UpdateTask)
		tasks.DELETE("/:taskId", c.DeleteTask)
	}
}

// ListTasks returns the project's tasks
func (c *TaskController) ListTasks(ctx *gin.Context) {
	project, ok := currentProject(ctx)
	if !ok {
		return
	}

	tasks, err := c.taskService.ListTasks(ctx.Request.Context(), project.ID)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Tasks retrieved successfully", dto.NewTaskListResponse(tasks))
}

// GetTask returns one task of the project
func (c *TaskController) GetTask(ctx *gin.Context) {
	project, taskID, ok := taskTarget(ctx)
	if !ok {
		return
	}

	task, err := c.taskService.GetTask(ctx.Request.Context(), project, taskID)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Task retrieved successfully", dto.NewTaskResponse(task))
}

// CreateTask adds a task to the project
func (c *TaskController) CreateTask(ctx *gin.Context) {
	project, ok := currentProject(ctx)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !bindJSON(ctx, &req) {
		return
	}

	task, err := c.taskService.CreateTask(ctx.Request.Context(), project.ID, req)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, "Task created successfully", dto.NewTaskResponse(task))
}

// UpdateTask applies a partial update to a task of the project
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	project, taskID, ok := taskTarget(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !bindJSON(ctx, &req) {
		return
	}

	task, err := c.taskService.UpdateTask(ctx.Request.Context(), project, taskID, req)
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, "Task updated successfully", dto.NewTaskResponse(task))
}

// DeleteTask removes a task of the project
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	project, taskID, ok := taskTarget(ctx)
	if !ok {
		return
	}

	if err := c.taskService.DeleteTask(ctx.Request.Context(), project, taskID); err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Task deleted successfully",
	})
}

// taskTarget returns the guarded project id and the task id from the path
func taskTarget(ctx *gin.Context) (uint, uint, bool) {
	project, ok := currentProject(ctx)
	if !ok {
		return 0, 0, false
	}

	taskID, ok := middleware.ParseID(ctx.Param("taskId"))
	if !ok {
		fail(ctx, apperror.NotFound("Task not found"))
		return 0, 0, false
	}

	return project.ID, taskID, true
}
