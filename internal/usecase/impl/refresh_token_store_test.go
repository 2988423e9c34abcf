package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"taskhub/config"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/errors"
	mockRepo "taskhub/internal/mocks/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRefreshTokenStore(t *testing.T, ttl time.Duration) (usecase.RefreshTokenStore, *mockRepo.MockRefreshTokenRepository) {
	repo := mockRepo.NewMockRefreshTokenRepository(t)
	cfg := &config.Config{}
	cfg.JWT.RefreshTokenTTL = ttl
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRefreshTokenStore(repo, cfg, logger), repo
}

func TestRefreshTokenStore_Create(t *testing.T) {
	store, repo := newRefreshTokenStore(t, time.Hour)

	ctx := context.Background()
	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			_, err := uuid.Parse(token.Token)
			assert.NoError(t, err, "token string should be a uuid")
			assert.Equal(t, "u-1", token.UserID)
			assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
		}).
		Return(nil)

	token, err := store.Create(ctx, "u-1")

	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
}

func TestRefreshTokenStore_Create_DefaultTTL(t *testing.T) {
	store, repo := newRefreshTokenStore(t, 0)

	ctx := context.Background()
	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt, time.Minute)
		}).
		Return(nil)

	_, err := store.Create(ctx, "u-1")

	require.NoError(t, err)
}

func TestRefreshTokenStore_FindByTokenString(t *testing.T) {
	store, repo := newRefreshTokenStore(t, time.Hour)

	ctx := context.Background()
	record := &entity.RefreshToken{Token: "tok", UserID: "u-1"}
	repo.EXPECT().FindByToken(ctx, "tok").Return(record, nil)

	found, err := store.FindByTokenString(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, record, found)
}

func TestRefreshTokenStore_FindByTokenString_NotFound(t *testing.T) {
	store, repo := newRefreshTokenStore(t, time.Hour)

	ctx := context.Background()
	repo.EXPECT().FindByToken(ctx, "ghost").Return(nil, repository.ErrRefreshTokenNotFound)

	found, err := store.FindByTokenString(ctx, "ghost")

	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenNotFound))
}

func TestRefreshTokenStore_VerifyNotExpired_Valid(t *testing.T) {
	store, _ := newRefreshTokenStore(t, time.Hour)

	token := &entity.RefreshToken{Token: "tok", UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)}

	verified, err := store.VerifyNotExpired(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, token, verified)
}

func TestRefreshTokenStore_VerifyNotExpired_ExpiredIsDeleted(t *testing.T) {
	store, repo := newRefreshTokenStore(t, time.Hour)

	ctx := context.Background()
	token := &entity.RefreshToken{Token: "tok", UserID: "u-1", ExpiresAt: time.Now().Add(-time.Minute)}
	repo.EXPECT().Delete(ctx, "tok").Return(nil)

	verified, err := store.VerifyNotExpired(ctx, token)

	assert.Nil(t, verified)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Refresh token was expired. Please make a new signin request.", appErr.Message())
}

func TestRefreshTokenStore_VerifyNotExpired_DeleteRace(t *testing.T) {
	store, repo := newRefreshTokenStore(t, time.Hour)

	ctx := context.Background()
	token := &entity.RefreshToken{Token: "tok", UserID: "u-1", ExpiresAt: time.Now().Add(-time.Minute)}
	// Another request already removed the row; expiry is still reported.
	repo.EXPECT().Delete(ctx, "tok").Return(repository.ErrRefreshTokenNotFound)

	_, err := store.VerifyNotExpired(ctx, token)

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
}

func TestRefreshTokenStore_RevokeAllForOwner(t *testing.T) {
	store, repo := newRefreshTokenStore(t, time.Hour)

	ctx := context.Background()
	repo.EXPECT().DeleteByUserID(ctx, "u-1").Return(int64(3), nil)

	count, err := store.RevokeAllForOwner(ctx, "u-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
