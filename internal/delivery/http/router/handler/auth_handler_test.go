package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/validator"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionUsecase returns canned outputs per operation.
type stubSessionUsecase struct {
	signInOut  *usecase.SignInOutput
	signInErr  error
	signOutOut *usecase.SignOutOutput
}

func (s *stubSessionUsecase) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	return s.signInOut, s.signInErr
}

func (s *stubSessionUsecase) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	return nil, nil
}

func (s *stubSessionUsecase) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	return nil, nil
}

func (s *stubSessionUsecase) SignOut(ctx context.Context, input usecase.SignOutInput) (*usecase.SignOutOutput, error) {
	return s.signOutOut, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func TestAuthHandler_SignIn(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubSessionUsecase{
		signInOut: &usecase.SignInOutput{
			UserID:      "u-1",
			Username:    "budi",
			AccessToken: "access-token",
			TokenType:   "Bearer",
		},
	}, slog.Default())

	body := `{"username":"budi","password":"rahasia123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"accessToken"`
			TokenType   string `json:"tokenType"`
		} `json:"data"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "access-token", envelope.Data.AccessToken)
	assert.Equal(t, "Bearer", envelope.Data.TokenType)
	assert.Equal(t, http.StatusOK, envelope.Code)
}

func TestAuthHandler_SignIn_BadCredentialsEnvelope(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubSessionUsecase{
		signInErr: domainerrors.ErrInvalidCredentials,
	}, slog.Default())

	body := `{"username":"budi","password":"salah"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SignIn(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)

	var envelope struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), envelope.Message)
	assert.Equal(t, rec.Code, envelope.Code)
}

func TestAuthHandler_SignIn_MissingFields(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubSessionUsecase{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(`{"username":"budi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SignIn(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_SignOut_NoPrincipal(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubSessionUsecase{
		signOutOut: &usecase.SignOutOutput{Status: "User is not authenticated"},
	}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User is not authenticated")
}
