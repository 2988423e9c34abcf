package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
	mockRepo "taskhub/internal/mocks/repository"
	mockService "taskhub/internal/mocks/service"
	"taskhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionMocks struct {
	txManager     *mockRepo.MockTransactionManager
	authenticator *mockService.MockAuthenticator
	hasher        *mockService.MockPasswordHasher
	tokenIssuer   *mockService.MockTokenIssuer
	refreshStore  *mockRefreshTokenStore
	userClient    *mockService.MockUserClient
}

// mockRefreshTokenStore is a hand-rolled mock for the store interface,
// which lives in the usecase package itself.
type mockRefreshTokenStore struct {
	mock.Mock
}

func newMockRefreshTokenStore(t *testing.T) *mockRefreshTokenStore {
	m := &mockRefreshTokenStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockRefreshTokenStore) Create(ctx context.Context, userID string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, userID)
	if token, ok := args.Get(0).(*entity.RefreshToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRefreshTokenStore) FindByTokenString(ctx context.Context, token string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, token)
	if record, ok := args.Get(0).(*entity.RefreshToken); ok {
		return record, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRefreshTokenStore) VerifyNotExpired(ctx context.Context, token *entity.RefreshToken) (*entity.RefreshToken, error) {
	args := m.Called(ctx, token)
	if record, ok := args.Get(0).(*entity.RefreshToken); ok {
		return record, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRefreshTokenStore) RevokeAllForOwner(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}

func newSessionService(t *testing.T) (usecase.SessionUsecase, *sessionMocks) {
	mocks := &sessionMocks{
		txManager:     mockRepo.NewMockTransactionManager(t),
		authenticator: mockService.NewMockAuthenticator(t),
		hasher:        mockService.NewMockPasswordHasher(t),
		tokenIssuer:   mockService.NewMockTokenIssuer(t),
		refreshStore:  newMockRefreshTokenStore(t),
		userClient:    mockService.NewMockUserClient(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewSessionService(
		mocks.txManager,
		mocks.authenticator,
		mocks.hasher,
		mocks.tokenIssuer,
		mocks.refreshStore,
		mocks.userClient,
		logger,
	)

	return srv, mocks
}

func TestSessionService_SignIn_Success(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	principal := &entity.Principal{UserID: "u-1", Username: "budi", PasswordHash: "hashed"}

	mocks.authenticator.EXPECT().Authenticate(ctx, "budi", "rahasia123").Return(principal, nil)
	mocks.tokenIssuer.EXPECT().IssueAccessToken(principal).Return("access-token", nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockActiveRepo := mockRepo.NewMockActiveTokenRepository(t)

			mockFactory.EXPECT().ActiveTokenRepo().Return(mockActiveRepo)
			mockActiveRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ActiveToken")).
				Run(func(ctx context.Context, token *entity.ActiveToken) {
					assert.Equal(t, "access-token", token.Token)
					assert.Equal(t, "u-1", token.UserID)
					assert.True(t, token.IsActive)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	mocks.refreshStore.On("Create", ctx, "u-1").
		Return(&entity.RefreshToken{Token: "refresh-token", UserID: "u-1"}, nil)

	out, err := srv.SignIn(ctx, usecase.SignInInput{Username: "budi", Password: "rahasia123"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", out.UserID)
	assert.Equal(t, "budi", out.Username)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, "Bearer", out.TokenType)
}

func TestSessionService_SignIn_BadCredentials(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	mocks.authenticator.EXPECT().
		Authenticate(ctx, "budi", "salah").
		Return(nil, domainerrors.ErrInvalidCredentials)

	out, err := srv.SignIn(ctx, usecase.SignInInput{Username: "budi", Password: "salah"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_SignIn_LockedAccount(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	mocks.authenticator.EXPECT().
		Authenticate(ctx, "budi", "rahasia123").
		Return(nil, domainerrors.ErrAccountLocked)

	_, err := srv.SignIn(ctx, usecase.SignInInput{Username: "budi", Password: "rahasia123"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountLocked))
}

func TestSessionService_SignUp_Success(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	mocks.hasher.EXPECT().Hash("rahasia123").Return("hashed", nil)

	var createdID string
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPrincipalRepo := mockRepo.NewMockPrincipalRepository(t)

			mockFactory.EXPECT().PrincipalRepo().Return(mockPrincipalRepo)
			mockPrincipalRepo.EXPECT().ExistsByUsername(ctx, "budi").Return(false, nil)
			mockPrincipalRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Principal")).
				Run(func(ctx context.Context, principal *entity.Principal) {
					createdID = principal.UserID
					assert.Equal(t, "budi", principal.Username)
					assert.Equal(t, "hashed", principal.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	mocks.userClient.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*service.CreateUserRequest")).
		RunAndReturn(func(ctx context.Context, req *service.CreateUserRequest) error {
			assert.Equal(t, createdID, req.UserID)
			assert.Equal(t, "Budi Santoso", req.Nama)
			assert.Equal(t, "budi@example.com", req.Email)

			return nil
		})

	out, err := srv.SignUp(ctx, usecase.SignUpInput{
		Username: "budi",
		Password: "rahasia123",
		Nama:     "Budi Santoso",
		Email:    "budi@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, createdID, out.UserID)
	assert.Equal(t, "User created: "+createdID, out.Message)
}

func TestSessionService_SignUp_UsernameTaken(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	mocks.hasher.EXPECT().Hash("rahasia123").Return("hashed", nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPrincipalRepo := mockRepo.NewMockPrincipalRepository(t)

			mockFactory.EXPECT().PrincipalRepo().Return(mockPrincipalRepo)
			mockPrincipalRepo.EXPECT().ExistsByUsername(ctx, "budi").Return(true, nil)

			return fn(mockFactory)
		})

	out, err := srv.SignUp(ctx, usecase.SignUpInput{Username: "budi", Password: "rahasia123"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Username is already taken!", appErr.Message())
}

func TestSessionService_SignUp_PeerFailureSurfacesAfterCommit(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	mocks.hasher.EXPECT().Hash("rahasia123").Return("hashed", nil)

	principalCommitted := false
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPrincipalRepo := mockRepo.NewMockPrincipalRepository(t)

			mockFactory.EXPECT().PrincipalRepo().Return(mockPrincipalRepo)
			mockPrincipalRepo.EXPECT().ExistsByUsername(ctx, "budi").Return(false, nil)
			mockPrincipalRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Principal")).
				Run(func(ctx context.Context, principal *entity.Principal) {
					principalCommitted = true
				}).
				Return(nil)

			return fn(mockFactory)
		})

	mocks.userClient.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*service.CreateUserRequest")).
		Return(domainerrors.ErrExternalService)

	out, err := srv.SignUp(ctx, usecase.SignUpInput{Username: "budi", Password: "rahasia123"})

	// The peer failure escalates, but the local account was already written.
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrExternalService))
	assert.True(t, principalCommitted)
}

func TestSessionService_Refresh_Success(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	record := &entity.RefreshToken{
		Token:     "refresh-token",
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	principal := &entity.Principal{UserID: "u-1", Username: "budi"}

	mocks.refreshStore.On("FindByTokenString", ctx, "refresh-token").Return(record, nil)
	mocks.refreshStore.On("VerifyNotExpired", ctx, record).Return(record, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPrincipalRepo := mockRepo.NewMockPrincipalRepository(t)
			mockActiveRepo := mockRepo.NewMockActiveTokenRepository(t)

			mockFactory.EXPECT().PrincipalRepo().Return(mockPrincipalRepo)
			mockFactory.EXPECT().ActiveTokenRepo().Return(mockActiveRepo)

			mockPrincipalRepo.EXPECT().FindByUserID(ctx, "u-1").Return(principal, nil)
			mockActiveRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ActiveToken")).
				Run(func(ctx context.Context, token *entity.ActiveToken) {
					assert.Equal(t, "new-access-token", token.Token)
					assert.Equal(t, "u-1", token.UserID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	mocks.tokenIssuer.EXPECT().IssueAccessTokenFromUsername("budi").Return("new-access-token", nil)

	out, err := srv.Refresh(ctx, usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", out.AccessToken)
	// The refresh token is returned unchanged: no rotation.
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, "Bearer", out.TokenType)
}

func TestSessionService_Refresh_UnknownToken(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	mocks.refreshStore.On("FindByTokenString", ctx, "ghost").
		Return(nil, domainerrors.ErrRefreshTokenNotFound)

	out, err := srv.Refresh(ctx, usecase.RefreshInput{RefreshToken: "ghost"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Refresh token is not in database!", appErr.Message())
}

func TestSessionService_Refresh_ExpiredToken(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	record := &entity.RefreshToken{
		Token:     "refresh-token",
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	mocks.refreshStore.On("FindByTokenString", ctx, "refresh-token").Return(record, nil)
	mocks.refreshStore.On("VerifyNotExpired", ctx, record).
		Return(nil, domainerrors.ErrRefreshTokenExpired)

	out, err := srv.Refresh(ctx, usecase.RefreshInput{RefreshToken: "refresh-token"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
}

func TestSessionService_SignOut_Success(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	ledgerEntry := &entity.ActiveToken{Token: "access-token", UserID: "u-1", IsActive: true}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockActiveRepo := mockRepo.NewMockActiveTokenRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().ActiveTokenRepo().Return(mockActiveRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockActiveRepo.EXPECT().FindByToken(ctx, "access-token").Return(ledgerEntry, nil)
			mockActiveRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.ActiveToken")).
				Run(func(ctx context.Context, token *entity.ActiveToken) {
					assert.False(t, token.IsActive)
				}).
				Return(nil)
			mockRefreshRepo.EXPECT().DeleteByUserID(ctx, "u-1").Return(int64(2), nil)

			return fn(mockFactory)
		})

	out, err := srv.SignOut(ctx, usecase.SignOutInput{
		UserID:              "u-1",
		AuthorizationHeader: "Bearer access-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "Logout successful!", out.Status)
}

func TestSessionService_SignOut_NotAuthenticated(t *testing.T) {
	srv, _ := newSessionService(t)

	out, err := srv.SignOut(context.Background(), usecase.SignOutInput{
		AuthorizationHeader: "Bearer access-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "User is not authenticated", out.Status)
}

func TestSessionService_SignOut_BadHeader(t *testing.T) {
	srv, _ := newSessionService(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "bare bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := srv.SignOut(context.Background(), usecase.SignOutInput{
				UserID:              "u-1",
				AuthorizationHeader: tt.header,
			})

			require.NoError(t, err)
			assert.Equal(t, "Authorization header is missing or invalid", out.Status)
		})
	}
}

func TestSessionService_SignOut_TokenNotInLedger(t *testing.T) {
	srv, mocks := newSessionService(t)

	ctx := context.Background()
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockActiveRepo := mockRepo.NewMockActiveTokenRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().ActiveTokenRepo().Return(mockActiveRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockActiveRepo.EXPECT().FindByToken(ctx, "ghost-token").
				Return(nil, repository.ErrActiveTokenNotFound)

			return fn(mockFactory)
		})

	out, err := srv.SignOut(ctx, usecase.SignOutInput{
		UserID:              "u-1",
		AuthorizationHeader: "Bearer ghost-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "Token not found, logout failed!", out.Status)
}
