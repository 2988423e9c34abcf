package usecase

import (
	"context"
	"time"

	"taskhub/internal/domain/service"
)

// UserView is a user profile as served to clients, optionally enriched
// with department and address data from the directory service.
type UserView struct {
	UserID     string                 `json:"userId"`
	Nama       string                 `json:"nama"`
	Email      string                 `json:"email"`
	Department *service.DepartmentDTO `json:"department,omitempty"`
	Address    *service.AddressDTO    `json:"address,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// CreateUserInput defines the data required to create a user profile.
// UserID is assigned by the auth service at registration and carried over.
type CreateUserInput struct {
	UserID       string
	Nama         string
	Email        string
	DepartmentID *int64
	AddressID    *int64
}

// UpdateUserInput defines the replacement data for an existing profile.
type UpdateUserInput struct {
	Nama         string
	Email        string
	DepartmentID *int64
	AddressID    *int64
}

// DeleteUserOutput confirms a deletion.
type DeleteUserOutput struct {
	DeletedUserID string `json:"deletedUserId"`
	Info          string `json:"info"`
}

// UserUsecase defines the interface for user profile operations.
type UserUsecase interface {
	GetAllUsers(ctx context.Context) ([]*UserView, error)
	GetUserByID(ctx context.Context, userID string) (*UserView, error)
	AddUser(ctx context.Context, input CreateUserInput) (*UserView, error)
	UpdateUser(ctx context.Context, userID string, input UpdateUserInput) (*UserView, error)
	DeleteUser(ctx context.Context, userID string) (*DeleteUserOutput, error)
}
