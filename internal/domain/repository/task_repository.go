package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindAll retrieves every task, newest first.
	FindAll(ctx context.Context) ([]*entity.Task, error)

	// FindByID retrieves a single task by its numeric identifier.
	FindByID(ctx context.Context, taskID int64) (*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// Update modifies an existing task entity in the storage.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its identifier.
	Delete(ctx context.Context, taskID int64) error
}
