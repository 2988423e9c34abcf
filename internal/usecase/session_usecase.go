// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignInInput defines the credentials for establishing a session.
type SignInInput struct {
	Username string
	Password string
}

// SignUpInput defines the data required to register a new account and its
// linked profile.
type SignUpInput struct {
	Username     string
	Password     string
	Nama         string
	Email        string
	AddressID    *int64
	DepartmentID *int64
}

// RefreshInput carries the opaque refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// SignOutInput identifies the session being terminated. UserID comes from
// the authenticated principal; the raw header is re-inspected because the
// ledger keys on the exact access token string.
type SignOutInput struct {
	UserID              string
	AuthorizationHeader string
}

// --- Output DTOs ---

// SignInOutput returns the freshly minted session tokens.
type SignInOutput struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// SignUpOutput confirms a completed registration.
type SignUpOutput struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// RefreshOutput returns a new access token alongside the unchanged
// refresh token.
type RefreshOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// SignOutOutput reports the terminal status of a sign-out attempt.
type SignOutOutput struct {
	Status string `json:"status"`
}

// SessionUsecase defines the interface for the session state machine:
// establishing, refreshing and terminating sessions.
type SessionUsecase interface {
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)
	SignOut(ctx context.Context, input SignOutInput) (*SignOutOutput, error)
}
