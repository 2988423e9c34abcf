package auth

import (
	"context"
	"time"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// authenticator verifies credentials against stored principals and
// enforces account state before a session can be established.
type authenticator struct {
	principalRepo repository.PrincipalRepository
	hasher        service.PasswordHasher
}

// NewAuthenticator is the constructor for authenticator.
func NewAuthenticator(principalRepo repository.PrincipalRepository, hasher service.PasswordHasher) service.Authenticator {
	return &authenticator{
		principalRepo: principalRepo,
		hasher:        hasher,
	}
}

// Authenticate resolves the principal for a username/password pair.
// An unknown username and a wrong password both map to the same
// credentials error so callers cannot probe which usernames exist.
func (a *authenticator) Authenticate(ctx context.Context, username, password string) (*entity.Principal, error) {
	principal, err := a.principalRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "find principal by username")
	}

	if !a.hasher.Check(password, principal.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if principal.Expired(time.Now()) {
		return nil, domainerrors.ErrAccountExpired
	}
	if principal.Locked {
		return nil, domainerrors.ErrAccountLocked
	}
	if principal.Disabled {
		return nil, domainerrors.ErrAccountDisabled
	}

	return principal, nil
}
