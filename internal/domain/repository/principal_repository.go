// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrPrincipalNotFound is a domain-specific error returned when a principal is not found.
var ErrPrincipalNotFound = errors.New("principal not found")

// PrincipalRepository defines the standard operations for principal persistence.
// The application layer depends on this interface, not the concrete implementation.
type PrincipalRepository interface {
	// FindByUsername retrieves a single principal by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Principal, error)

	// FindByUserID retrieves a single principal by its stable user identifier.
	FindByUserID(ctx context.Context, userID string) (*entity.Principal, error)

	// ExistsByUsername reports whether a principal with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new principal entity to the storage.
	Create(ctx context.Context, principal *entity.Principal) error
}
