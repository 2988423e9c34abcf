// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/config"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// jwtService issues and validates HS256-signed access tokens.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	accessTTL := cfg.JWT.AccessTokenTTL
	if accessTTL <= 0 {
		accessTTL = time.Minute * 15
	}

	return &jwtService{
		secret:    cfg.JWT.Secret,
		accessTTL: accessTTL,
	}, nil
}

// IssueAccessToken creates an access token carrying both the account id and
// the username of an authenticated principal.
func (s *jwtService) IssueAccessToken(principal *entity.Principal) (string, error) {
	return s.sign(&service.Claims{
		UserID:   principal.UserID,
		Username: principal.Username,
	})
}

// IssueAccessTokenFromUsername creates an access token from a username
// alone. Refresh only has the token owner's username at hand, so the
// account id claim is left out.
func (s *jwtService) IssueAccessTokenFromUsername(username string) (string, error) {
	return s.sign(&service.Claims{Username: username})
}

// ValidateToken parses and verifies an access token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAccessTokenInvalid, err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrAccessTokenInvalid
	}

	return claims, nil
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) sign(claims *service.Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}
