package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/config"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/entity"
	"taskhub/internal/errors"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.AccessTokenTTL = time.Minute * 5

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestIssueAccessToken_CarriesUserIDAndUsername(t *testing.T) {
	svc := newTestJWTService(t)
	principal := &entity.Principal{UserID: "u-42", Username: "budi"}

	tokenString, err := svc.IssueAccessToken(principal)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u-42", claims.UserID)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, "budi", claims.Subject)
}

func TestIssueAccessTokenFromUsername_OmitsUserID(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString, err := svc.IssueAccessTokenFromUsername("budi")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Empty(t, claims.UserID)
	assert.Equal(t, "budi", claims.Username)
}

func TestValidateToken_RejectsTampering(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString, err := svc.IssueAccessTokenFromUsername("budi")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString + "x")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessTokenInvalid))
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	other := &jwtService{secret: "another-secret", accessTTL: time.Minute}
	tokenString, err := other.IssueAccessTokenFromUsername("budi")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessTokenInvalid))
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	svc := newTestJWTService(t)
	svc.accessTTL = -time.Minute

	tokenString, err := svc.IssueAccessTokenFromUsername("budi")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessTokenInvalid))
}

func TestValidateToken_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := newTestJWTService(t)

	// alg=none tokens must never pass.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"username": "budi"})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessTokenInvalid))
}

func TestAccessTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)
	assert.Equal(t, time.Minute*5, svc.AccessTokenDuration())
}
