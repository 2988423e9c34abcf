package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user-profile persistence
// inside the user service.
type UserRepository interface {
	// FindAll retrieves every user profile.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, userID string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by their unique ID.
	Delete(ctx context.Context, userID string) error
}
