package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo   repository.TaskRepository
	userClient service.UserClient
	logger     *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	userClient service.UserClient,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		taskRepo:   taskRepo,
		userClient: userClient,
		logger:     logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAllTasks retrieves every task, each enriched with its owner's profile
// when the user service can provide it.
func (srv *taskService) GetAllTasks(ctx context.Context) ([]*usecase.TaskView, error) {
	tasks, err := srv.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	views := make([]*usecase.TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, srv.toView(ctx, task))
	}

	return views, nil
}

// GetTaskByID retrieves a single task.
func (srv *taskService) GetTaskByID(ctx context.Context, taskID int64) (*usecase.TaskView, error) {
	task, err := srv.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return srv.toView(ctx, task), nil
}

// AddTask creates a new task.
func (srv *taskService) AddTask(ctx context.Context, input usecase.CreateTaskInput) (*usecase.TaskView, error) {
	task := &entity.Task{
		Name:        input.Name,
		Description: input.Description,
		UserID:      input.UserID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}
	srv.log(ctx).Info("Task created", slog.Int64("task_id", task.TaskID))

	return srv.toView(ctx, task), nil
}

// UpdateTask replaces the mutable fields of an existing task.
func (srv *taskService) UpdateTask(ctx context.Context, taskID int64, input usecase.UpdateTaskInput) (*usecase.TaskView, error) {
	task, err := srv.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Name = input.Name
	task.Description = input.Description
	task.UserID = input.UserID

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "task not found")
		}

		return nil, errors.Wrap(err, "failed to update task")
	}
	srv.log(ctx).Info("Task updated", slog.Int64("task_id", taskID))

	return srv.toView(ctx, task), nil
}

// DeleteTask removes a task.
func (srv *taskService) DeleteTask(ctx context.Context, taskID int64) (*usecase.DeleteTaskOutput, error) {
	if err := srv.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "task not found")
		}

		return nil, errors.Wrap(err, "failed to delete task")
	}
	srv.log(ctx).Info("Task deleted", slog.Int64("task_id", taskID))

	return &usecase.DeleteTaskOutput{
		DeletedTaskID: taskID,
		Info:          fmt.Sprintf("Task with id %d deleted", taskID),
	}, nil
}

func (srv *taskService) findTask(ctx context.Context, taskID int64) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "task not found")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return task, nil
}

// toView converts a task entity to its response shape. The owner lookup
// follows the degrade policy: the view ships without the profile when the
// user service cannot answer.
func (srv *taskService) toView(ctx context.Context, task *entity.Task) *usecase.TaskView {
	view := &usecase.TaskView{
		TaskID:      task.TaskID,
		Name:        task.Name,
		Description: task.Description,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.UserID != "" {
		view.User = srv.userClient.GetUserByID(ctx, task.UserID)
	}

	return view
}
