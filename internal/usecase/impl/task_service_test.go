package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
	mockRepo "taskhub/internal/mocks/repository"
	mockService "taskhub/internal/mocks/service"
	"taskhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (usecase.TaskUsecase, *mockRepo.MockTaskRepository, *mockService.MockUserClient) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	userClient := mockService.NewMockUserClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewTaskService(taskRepo, userClient, logger), taskRepo, userClient
}

func TestTaskService_GetAllTasks(t *testing.T) {
	srv, taskRepo, userClient := newTaskService(t)

	ctx := context.Background()
	taskRepo.EXPECT().FindAll(ctx).Return([]*entity.Task{
		{TaskID: 1, Name: "Belanja", UserID: "u-1"},
		{TaskID: 2, Name: "Masak"},
	}, nil)
	userClient.EXPECT().GetUserByID(ctx, "u-1").
		Return(&service.UserDTO{UserID: "u-1", Nama: "Budi"})

	views, err := srv.GetAllTasks(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	require.NotNil(t, views[0].User)
	assert.Equal(t, "Budi", views[0].User.Nama)
	// A task without an owner triggers no peer call at all.
	assert.Nil(t, views[1].User)
}

func TestTaskService_GetTaskByID_PeerDegrades(t *testing.T) {
	srv, taskRepo, userClient := newTaskService(t)

	ctx := context.Background()
	taskRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.Task{TaskID: 7, Name: "Belanja", UserID: "u-1"}, nil)
	// The user service is down; the view ships without the profile.
	userClient.EXPECT().GetUserByID(ctx, "u-1").Return(nil)

	view, err := srv.GetTaskByID(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), view.TaskID)
	assert.Nil(t, view.User)
}

func TestTaskService_GetTaskByID_NotFound(t *testing.T) {
	srv, taskRepo, _ := newTaskService(t)

	ctx := context.Background()
	taskRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrTaskNotFound)

	view, err := srv.GetTaskByID(ctx, 404)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestTaskService_AddTask(t *testing.T) {
	srv, taskRepo, userClient := newTaskService(t)

	ctx := context.Background()
	taskRepo.EXPECT().
		Create(ctx, &entity.Task{Name: "Belanja", Description: "Beli telur", UserID: "u-1"}).
		RunAndReturn(func(ctx context.Context, task *entity.Task) error {
			task.TaskID = 42

			return nil
		})
	userClient.EXPECT().GetUserByID(ctx, "u-1").
		Return(&service.UserDTO{UserID: "u-1", Nama: "Budi"})

	view, err := srv.AddTask(ctx, usecase.CreateTaskInput{
		Name:        "Belanja",
		Description: "Beli telur",
		UserID:      "u-1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), view.TaskID)
	assert.Equal(t, "Belanja", view.Name)
}

func TestTaskService_UpdateTask(t *testing.T) {
	srv, taskRepo, _ := newTaskService(t)

	ctx := context.Background()
	taskRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.Task{TaskID: 7, Name: "Belanja"}, nil)
	taskRepo.EXPECT().
		Update(ctx, &entity.Task{TaskID: 7, Name: "Belanja mingguan", Description: "Pasar"}).
		Return(nil)

	view, err := srv.UpdateTask(ctx, 7, usecase.UpdateTaskInput{
		Name:        "Belanja mingguan",
		Description: "Pasar",
	})

	require.NoError(t, err)
	assert.Equal(t, "Belanja mingguan", view.Name)
}

func TestTaskService_DeleteTask(t *testing.T) {
	srv, taskRepo, _ := newTaskService(t)

	ctx := context.Background()
	taskRepo.EXPECT().Delete(ctx, int64(7)).Return(nil)

	out, err := srv.DeleteTask(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.DeletedTaskID)
	assert.Equal(t, "Task with id 7 deleted", out.Info)
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	srv, taskRepo, _ := newTaskService(t)

	ctx := context.Background()
	taskRepo.EXPECT().Delete(ctx, int64(404)).Return(repository.ErrTaskNotFound)

	out, err := srv.DeleteTask(ctx, 404)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
