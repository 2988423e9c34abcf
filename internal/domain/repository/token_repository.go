package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// Domain-specific errors for token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrActiveTokenNotFound is returned when an access token is absent from the ledger.
	ErrActiveTokenNotFound = errors.New("active token not found")
)

// RefreshTokenRepository defines the persistence operations for refresh tokens.
// A token string uniquely identifies at most one owner.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves a refresh token record by its opaque token string.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Delete removes a single refresh token by its token string.
	Delete(ctx context.Context, token string) error

	// DeleteByUserID removes every refresh token owned by the user and
	// returns the number of deleted rows. Used at sign-out.
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

// ActiveTokenRepository defines the persistence operations for the issued
// access-token ledger, which makes explicit sign-out possible.
type ActiveTokenRepository interface {
	// Create registers a freshly issued access token for a user.
	Create(ctx context.Context, token *entity.ActiveToken) error

	// FindByToken retrieves a ledger entry by the access token string.
	FindByToken(ctx context.Context, token string) (*entity.ActiveToken, error)

	// Update persists changes to a ledger entry (typically IsActive).
	Update(ctx context.Context, token *entity.ActiveToken) error
}
