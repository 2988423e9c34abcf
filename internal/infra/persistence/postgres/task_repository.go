package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain's TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindAll retrieves every task, newest first.
func (repo *taskRepository) FindAll(ctx context.Context) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByID retrieves a single task by its numeric identifier.
func (repo *taskRepository) FindByID(ctx context.Context, taskID int64) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTaskDomain(&taskM), nil
}

// Create persists a new task entity to the storage.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Propagate generated values back to the entity.
	task.TaskID = taskM.TaskID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update modifies an existing task entity in the storage.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("task_id = ?", task.TaskID).
		Updates(map[string]any{
			"name":        taskM.Name,
			"description": taskM.Description,
			"user_id":     taskM.UserID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task by its identifier.
func (repo *taskRepository) Delete(ctx context.Context, taskID int64) error {
	result := repo.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func toTaskDomain(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		TaskID:      m.TaskID,
		Name:        m.Name,
		Description: m.Description,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromTaskDomain(task *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		TaskID:      task.TaskID,
		Name:        task.Name,
		Description: task.Description,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
