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

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo        repository.UserRepository
	directoryClient service.DirectoryClient
	logger          *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	directoryClient service.DirectoryClient,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:        userRepo,
		directoryClient: directoryClient,
		logger:          logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAllUsers retrieves every user profile, enriched with department and
// address when the directory service can provide them.
func (srv *userService) GetAllUsers(ctx context.Context) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, srv.toView(ctx, user))
	}

	return views, nil
}

// GetUserByID retrieves a single user profile.
func (srv *userService) GetUserByID(ctx context.Context, userID string) (*usecase.UserView, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.toView(ctx, user), nil
}

// AddUser creates a new user profile. The auth service calls this during
// sign-up with the account's userId; direct callers get a generated one.
func (srv *userService) AddUser(ctx context.Context, input usecase.CreateUserInput) (*usecase.UserView, error) {
	userID := input.UserID
	if userID == "" {
		userID = uuid.New().String()
	}

	user := &entity.User{
		UserID:       userID,
		Name:         input.Nama,
		Email:        input.Email,
		DepartmentID: input.DepartmentID,
		AddressID:    input.AddressID,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("User created", slog.String("user_id", user.UserID))

	return srv.toView(ctx, user), nil
}

// UpdateUser replaces the mutable fields of an existing profile.
func (srv *userService) UpdateUser(ctx context.Context, userID string, input usecase.UpdateUserInput) (*usecase.UserView, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Nama
	user.Email = input.Email
	user.DepartmentID = input.DepartmentID
	user.AddressID = input.AddressID

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}
	srv.log(ctx).Info("User updated", slog.String("user_id", userID))

	return srv.toView(ctx, user), nil
}

// DeleteUser removes a user profile.
func (srv *userService) DeleteUser(ctx context.Context, userID string) (*usecase.DeleteUserOutput, error) {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to delete user")
	}
	srv.log(ctx).Info("User deleted", slog.String("user_id", userID))

	return &usecase.DeleteUserOutput{
		DeletedUserID: userID,
		Info:          fmt.Sprintf("User with id %s deleted", userID),
	}, nil
}

func (srv *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// toView converts a user entity to its response shape. Directory lookups
// follow the degrade policy and are skipped entirely when the profile has
// no department or address reference.
func (srv *userService) toView(ctx context.Context, user *entity.User) *usecase.UserView {
	view := &usecase.UserView{
		UserID:    user.UserID,
		Nama:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DepartmentID != nil {
		view.Department = srv.directoryClient.GetDepartmentByID(ctx, *user.DepartmentID)
	}
	if user.AddressID != nil {
		view.Address = srv.directoryClient.GetAddressByID(ctx, *user.AddressID)
	}

	return view
}
