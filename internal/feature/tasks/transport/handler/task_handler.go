// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// Response details.
const (
	detailInvalidRequest = "invalid request"
	detailInvalidTaskID  = "Invalid task ID"
	detailNoFields       = "At least one field (completed or title) must be provided"
	detailTaskNotFound   = "Task not found"
	detailDatabaseError  = "Database error"
)

// TaskUsecase defines the use cases for tasks.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TaskUsecase interface {
	List(ctx context.Context, userEmail string) ([]entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, id string, patch entity.TaskPatch) error
	Delete(ctx context.Context, id string) error
}

// TaskHandler handles HTTP requests for task CRUD.
type TaskHandler struct {
	uc TaskUsecase
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(uc TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// List handles GET /tasks/:email. A user without tasks gets [].
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.uc.List(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, "list tasks", err)
		return
	}

	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskView(t))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /tasks. completed defaults to false.
func (h *TaskHandler) Create(c *gin.Context) {
	var req api.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Detail: detailInvalidRequest})
		return
	}

	task := &entity.Task{Title: *req.Title, UserEmail: *req.UserEmail}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.uc.Create(c.Request.Context(), task); err != nil {
		h.fail(c, "create task", err)
		return
	}

	slog.Info("task created", "id", task.ID, "user_email", task.UserEmail)
	c.JSON(http.StatusOK, api.CreateTaskResponse{ID: task.ID, Message: "Task created"})
}

// Update handles PUT /tasks/:task_id?completed=&title=.
func (h *TaskHandler) Update(c *gin.Context) {
	var params api.UpdateTaskParams
	query := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "completed", query, &params.Completed); err != nil {
		slog.Warn("update task query invalid", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Detail: detailInvalidRequest})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "title", query, &params.Title); err != nil {
		slog.Warn("update task query invalid", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Detail: detailInvalidRequest})
		return
	}

	id := c.Param("task_id")
	patch := entity.TaskPatch{Title: params.Title, Completed: params.Completed}
	if err := h.uc.Update(c.Request.Context(), id, patch); err != nil {
		h.fail(c, "update task", err)
		return
	}

	slog.Info("task updated", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Task updated"})
}

// Delete handles DELETE /tasks/:task_id.
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("task_id")
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete task", err)
		return
	}

	slog.Info("task deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Task deleted"})
}

// fail maps usecase errors to status codes. Anything unrecognised is a store failure.
func (h *TaskHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: detailInvalidTaskID})
	case errors.Is(err, usecase.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: detailNoFields})
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: detailTaskNotFound})
	default:
		slog.Error(op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Detail: detailDatabaseError})
		return
	}
	slog.Warn(op+" rejected", "error", err, "remote_addr", c.ClientIP())
}
