// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"taskhub/config"
	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultRefreshTokenTTL = 7 * 24 * time.Hour

// refreshTokenStore implements the RefreshTokenStore interface.
type refreshTokenStore struct {
	repo   repository.RefreshTokenRepository
	ttl    time.Duration
	logger *slog.Logger
}

// NewRefreshTokenStore is the constructor for refreshTokenStore.
func NewRefreshTokenStore(
	repo repository.RefreshTokenRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RefreshTokenStore {
	ttl := cfg.JWT.RefreshTokenTTL
	if ttl <= 0 {
		ttl = defaultRefreshTokenTTL
	}

	return &refreshTokenStore{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *refreshTokenStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Create mints and persists a new refresh token for the user. Existing
// tokens are left untouched, so concurrent sessions accumulate.
func (s *refreshTokenStore) Create(ctx context.Context, userID string) (*entity.RefreshToken, error) {
	token := &entity.RefreshToken{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.repo.Create(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}
	s.log(ctx).Debug("Refresh token created", slog.String("user_id", userID))

	return token, nil
}

// FindByTokenString resolves a presented token string to its record.
func (s *refreshTokenStore) FindByTokenString(ctx context.Context, token string) (*entity.RefreshToken, error) {
	record, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return record, nil
}

// VerifyNotExpired returns the token unchanged when still valid. An expired
// token is removed from the store so it cannot be retried.
func (s *refreshTokenStore) VerifyNotExpired(ctx context.Context, token *entity.RefreshToken) (*entity.RefreshToken, error) {
	if !token.Expired(time.Now()) {
		return token, nil
	}

	if err := s.repo.Delete(ctx, token.Token); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(err, "failed to delete expired refresh token")
	}
	s.log(ctx).Info("Expired refresh token removed", slog.String("user_id", token.UserID))

	return nil, domainerrors.ErrRefreshTokenExpired
}

// RevokeAllForOwner deletes every refresh token owned by the user.
func (s *refreshTokenStore) RevokeAllForOwner(ctx context.Context, userID string) (int64, error) {
	count, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke refresh tokens")
	}
	s.log(ctx).Info("Refresh tokens revoked", slog.String("user_id", userID), slog.Int64("count", count))

	return count, nil
}
