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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockService.MockDirectoryClient) {
	userRepo := mockRepo.NewMockUserRepository(t)
	directoryClient := mockService.NewMockDirectoryClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserService(userRepo, directoryClient, logger), userRepo, directoryClient
}

func int64Ptr(v int64) *int64 { return &v }

func TestUserService_GetUserByID_Enriched(t *testing.T) {
	srv, userRepo, directoryClient := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, "u-1").Return(&entity.User{
		UserID:       "u-1",
		Name:         "Budi",
		Email:        "budi@example.com",
		DepartmentID: int64Ptr(3),
		AddressID:    int64Ptr(9),
	}, nil)
	directoryClient.EXPECT().GetDepartmentByID(ctx, int64(3)).
		Return(&service.DepartmentDTO{DepartmentID: 3, DepartmentName: "Engineering"})
	directoryClient.EXPECT().GetAddressByID(ctx, int64(9)).
		Return(&service.AddressDTO{AddressID: 9, City: "Jakarta"})

	view, err := srv.GetUserByID(ctx, "u-1")

	require.NoError(t, err)
	require.NotNil(t, view.Department)
	assert.Equal(t, "Engineering", view.Department.DepartmentName)
	require.NotNil(t, view.Address)
	assert.Equal(t, "Jakarta", view.Address.City)
}

func TestUserService_GetUserByID_NoDirectoryRefs(t *testing.T) {
	srv, userRepo, _ := newUserService(t)

	ctx := context.Background()
	// No department or address ids: the directory service is never called.
	userRepo.EXPECT().FindByID(ctx, "u-1").
		Return(&entity.User{UserID: "u-1", Name: "Budi"}, nil)

	view, err := srv.GetUserByID(ctx, "u-1")

	require.NoError(t, err)
	assert.Nil(t, view.Department)
	assert.Nil(t, view.Address)
}

func TestUserService_GetUserByID_DirectoryDegrades(t *testing.T) {
	srv, userRepo, directoryClient := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, "u-1").Return(&entity.User{
		UserID:       "u-1",
		Name:         "Budi",
		DepartmentID: int64Ptr(3),
	}, nil)
	directoryClient.EXPECT().GetDepartmentByID(ctx, int64(3)).Return(nil)

	view, err := srv.GetUserByID(ctx, "u-1")

	require.NoError(t, err)
	assert.Equal(t, "Budi", view.Nama)
	assert.Nil(t, view.Department)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	srv, userRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	view, err := srv.GetUserByID(ctx, "ghost")

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_AddUser_KeepsProvidedID(t *testing.T) {
	srv, userRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		Create(ctx, &entity.User{UserID: "u-1", Name: "Budi", Email: "budi@example.com"}).
		Return(nil)

	view, err := srv.AddUser(ctx, usecase.CreateUserInput{
		UserID: "u-1",
		Nama:   "Budi",
		Email:  "budi@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "u-1", view.UserID)
}

func TestUserService_AddUser_GeneratesID(t *testing.T) {
	srv, userRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(ctx context.Context, user *entity.User) error {
			_, err := uuid.Parse(user.UserID)
			assert.NoError(t, err, "generated id should be a uuid")

			return nil
		})

	view, err := srv.AddUser(ctx, usecase.CreateUserInput{Nama: "Budi"})

	require.NoError(t, err)
	assert.NotEmpty(t, view.UserID)
}

func TestUserService_UpdateUser(t *testing.T) {
	srv, userRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByID(ctx, "u-1").
		Return(&entity.User{UserID: "u-1", Name: "Budi"}, nil)
	userRepo.EXPECT().
		Update(ctx, &entity.User{UserID: "u-1", Name: "Budi Santoso", Email: "budi@example.com"}).
		Return(nil)

	view, err := srv.UpdateUser(ctx, "u-1", usecase.UpdateUserInput{
		Nama:  "Budi Santoso",
		Email: "budi@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", view.Nama)
}

func TestUserService_DeleteUser(t *testing.T) {
	srv, userRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().Delete(ctx, "u-1").Return(nil)

	out, err := srv.DeleteUser(ctx, "u-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", out.DeletedUserID)
	assert.Equal(t, "User with id u-1 deleted", out.Info)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	srv, userRepo, _ := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().Delete(ctx, "ghost").Return(repository.ErrUserNotFound)

	out, err := srv.DeleteUser(ctx, "ghost")

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
