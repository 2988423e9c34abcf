package service

import (
	"context"

	"taskhub/internal/domain/entity"
)

// Authenticator verifies credentials and account state for sign-in. It is
// the collaborator that owns the credential checks; the session coordinator
// only maps its failures onto the error taxonomy.
type Authenticator interface {
	// Authenticate returns the principal when the username/password pair is
	// valid and the account is usable. Failure modes map to the taxonomy:
	// invalid credentials, account locked, disabled or expired.
	Authenticate(ctx context.Context, username, password string) (*entity.Principal, error)
}
