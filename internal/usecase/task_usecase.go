package usecase

import (
	"context"
	"time"

	"taskhub/internal/domain/service"
)

// TaskView is a task as served to clients, optionally enriched with the
// owner's profile from the user service.
type TaskView struct {
	TaskID      int64            `json:"taskId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	UserID      string           `json:"userId,omitempty"`
	User        *service.UserDTO `json:"user,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Name        string
	Description string
	UserID      string
}

// UpdateTaskInput defines the replacement data for an existing task.
type UpdateTaskInput struct {
	Name        string
	Description string
	UserID      string
}

// DeleteTaskOutput confirms a deletion.
type DeleteTaskOutput struct {
	DeletedTaskID int64  `json:"deletedTaskId"`
	Info          string `json:"info"`
}

// TaskUsecase defines the interface for task management operations.
type TaskUsecase interface {
	GetAllTasks(ctx context.Context) ([]*TaskView, error)
	GetTaskByID(ctx context.Context, taskID int64) (*TaskView, error)
	AddTask(ctx context.Context, input CreateTaskInput) (*TaskView, error)
	UpdateTask(ctx context.Context, taskID int64, input UpdateTaskInput) (*TaskView, error)
	DeleteTask(ctx context.Context, taskID int64) (*DeleteTaskOutput, error)
}
