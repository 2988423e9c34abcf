package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// Terminal sign-out statuses. Sign-out never fails with an auth error;
// it reports what happened instead.
const (
	signOutStatusNotAuthenticated = "User is not authenticated"
	signOutStatusBadHeader        = "Authorization header is missing or invalid"
	signOutStatusTokenNotFound    = "Token not found, logout failed!"
	signOutStatusSuccess          = "Logout successful!"
)

// sessionService implements the SessionUsecase interface. It coordinates
// the authenticator, the token issuer, the refresh token store and the
// issued-token ledger into the session state machine.
type sessionService struct {
	txManager     repository.TransactionManager
	authenticator service.Authenticator
	hasher        service.PasswordHasher
	tokenIssuer   service.TokenIssuer
	refreshStore  usecase.RefreshTokenStore
	userClient    service.UserClient
	logger        *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	authenticator service.Authenticator,
	hasher service.PasswordHasher,
	tokenIssuer service.TokenIssuer,
	refreshStore usecase.RefreshTokenStore,
	userClient service.UserClient,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager:     txManager,
		authenticator: authenticator,
		hasher:        hasher,
		tokenIssuer:   tokenIssuer,
		refreshStore:  refreshStore,
		userClient:    userClient,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies credentials, mints the session tokens and registers the
// access token in the issued-token ledger.
func (srv *sessionService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	principal, err := srv.authenticator.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		srv.log(ctx).Info("Sign-in rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	accessToken, err := srv.tokenIssuer.IssueAccessToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activeRepo := repoFactory.ActiveTokenRepo()

		return activeRepo.Create(ctx, &entity.ActiveToken{
			Token:    accessToken,
			UserID:   principal.UserID,
			IsActive: true,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register access token")
	}

	refreshToken, err := srv.refreshStore.Create(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Sign-in completed", slog.String("user_id", principal.UserID))

	return &usecase.SignInOutput{
		UserID:       principal.UserID,
		Username:     principal.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		TokenType:    "Bearer",
	}, nil
}

// SignUp registers a new principal and then provisions the linked profile
// in the user service. The peer call runs after the principal is committed:
// if it fails, the failure surfaces to the caller while the local account
// remains. A retried sign-up then reports the username conflict.
func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	userID := uuid.New().String()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principalRepo := repoFactory.PrincipalRepo()

		exists, err := principalRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if exists {
			return domainerrors.ErrUsernameTaken
		}

		return principalRepo.Create(ctx, &entity.Principal{
			UserID:       userID,
			Username:     input.Username,
			PasswordHash: passwordHash,
		})
	})
	if err != nil {
		srv.log(ctx).Info("Sign-up rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// Mandatory side effect: the profile must exist in the user service.
	// A failure here escalates even though the principal stays committed.
	if err := srv.userClient.CreateUser(ctx, &service.CreateUserRequest{
		UserID:       userID,
		Nama:         input.Nama,
		Email:        input.Email,
		AddressID:    input.AddressID,
		DepartmentID: input.DepartmentID,
	}); err != nil {
		srv.log(ctx).Error("Profile provisioning failed after account creation",
			slog.String("user_id", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Sign-up completed", slog.String("user_id", userID))

	return &usecase.SignUpOutput{
		UserID:  userID,
		Message: fmt.Sprintf("User created: %s", userID),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// refresh token itself is not rotated; the client keeps presenting the
// same one until it expires or is revoked.
func (srv *sessionService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	record, err := srv.refreshStore.FindByTokenString(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	record, err = srv.refreshStore.VerifyNotExpired(ctx, record)
	if err != nil {
		return nil, err
	}

	var accessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principalRepo := repoFactory.PrincipalRepo()
		activeRepo := repoFactory.ActiveTokenRepo()

		principal, err := principalRepo.FindByUserID(ctx, record.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrPrincipalNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenNotFound, "token owner no longer exists")
			}

			return errors.Wrap(err, "failed to find token owner")
		}

		// Minted from the username alone; the ledger still tracks it.
		accessToken, err = srv.tokenIssuer.IssueAccessTokenFromUsername(principal.Username)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		return activeRepo.Create(ctx, &entity.ActiveToken{
			Token:    accessToken,
			UserID:   record.UserID,
			IsActive: true,
		})
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Access token refreshed", slog.String("user_id", record.UserID))

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: record.Token,
		TokenType:    "Bearer",
	}, nil
}

// SignOut terminates the session: the presented access token is marked
// inactive in the ledger and every refresh token of the owner is revoked.
func (srv *sessionService) SignOut(ctx context.Context, input usecase.SignOutInput) (*usecase.SignOutOutput, error) {
	if input.UserID == "" {
		return &usecase.SignOutOutput{Status: signOutStatusNotAuthenticated}, nil
	}

	accessToken, ok := strings.CutPrefix(input.AuthorizationHeader, bearerPrefix)
	if !ok || accessToken == "" {
		return &usecase.SignOutOutput{Status: signOutStatusBadHeader}, nil
	}

	status := signOutStatusSuccess
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activeRepo := repoFactory.ActiveTokenRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		ledgerEntry, err := activeRepo.FindByToken(ctx, accessToken)
		if err != nil {
			if errors.Is(err, repository.ErrActiveTokenNotFound) {
				status = signOutStatusTokenNotFound

				return nil
			}

			return errors.Wrap(err, "failed to find access token")
		}

		ledgerEntry.IsActive = false
		if err := activeRepo.Update(ctx, ledgerEntry); err != nil {
			return errors.Wrap(err, "failed to deactivate access token")
		}

		if _, err := refreshRepo.DeleteByUserID(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh tokens")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Sign-out failed", slog.String("user_id", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Sign-out finished", slog.String("user_id", input.UserID), slog.String("status", status))

	return &usecase.SignOutOutput{Status: status}, nil
}
