package usecase

import (
	"context"

	"taskhub/internal/domain/entity"
)

// RefreshTokenStore manages the lifecycle of opaque refresh tokens. It is
// split out of the session coordinator so the token rules (generation,
// TTL, expiry-on-read) can be tested in isolation.
type RefreshTokenStore interface {
	// Create mints and persists a new refresh token for the user.
	Create(ctx context.Context, userID string) (*entity.RefreshToken, error)

	// FindByTokenString resolves a presented token string to its record.
	// An unknown token maps to the not-in-database error.
	FindByTokenString(ctx context.Context, token string) (*entity.RefreshToken, error)

	// VerifyNotExpired returns the token unchanged when still valid. An
	// expired token is deleted as a side effect and the expired error is
	// returned, forcing a new sign-in.
	VerifyNotExpired(ctx context.Context, token *entity.RefreshToken) (*entity.RefreshToken, error)

	// RevokeAllForOwner deletes every refresh token owned by the user and
	// returns how many were removed.
	RevokeAllForOwner(ctx context.Context, userID string) (int64, error)
}
