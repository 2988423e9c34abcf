package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/internal/domain/entity"
)

// Claims defines the custom claims embedded in access tokens.
type Claims struct {
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer defines the interface for minting and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenIssuer interface {
	// IssueAccessToken creates a signed, time-bounded access token carrying
	// the principal's userId and username.
	IssueAccessToken(principal *entity.Principal) (string, error)

	// IssueAccessTokenFromUsername mints a token from a bare username.
	// Used on refresh, where full principal context is not re-derived; the
	// resulting token does not carry a userId claim.
	IssueAccessTokenFromUsername(username string) (string, error)

	// ValidateToken verifies signature and expiry of an incoming token and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access-token TTL.
	AccessTokenDuration() time.Duration
}
