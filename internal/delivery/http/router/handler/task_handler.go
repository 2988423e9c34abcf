package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// taskRequest is the create/update payload for a task.
type taskRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAllTasks lists every task.
func (h *TaskHandler) GetAllTasks(c echo.Context) error {
	tasks, err := h.uc.GetAllTasks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

// GetTaskByID retrieves a single task.
func (h *TaskHandler) GetTaskByID(c echo.Context) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.uc.GetTaskByID(c.Request().Context(), taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task retrieved successfully")
}

// AddTask creates a new task.
func (h *TaskHandler) AddTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.AddTask(c.Request().Context(), usecase.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created successfully")
}

// UpdateTask replaces the mutable fields of an existing task.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), taskID, usecase.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task updated successfully")
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.DeleteTask(c.Request().Context(), taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Info)
}

func parseTaskID(c echo.Context) (int64, error) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid task id")
	}

	return taskID, nil
}
