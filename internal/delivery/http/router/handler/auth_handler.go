// Package handler contains the HTTP handlers for the services.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signInRequest is the sign-in payload.
type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// signUpRequest is the registration payload. Profile fields are forwarded
// to the peer user service.
type signUpRequest struct {
	Username     string `json:"username" validate:"required,min=3"`
	Password     string `json:"password" validate:"required,min=8"`
	Nama         string `json:"nama" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	AddressID    *int64 `json:"addressId"`
	DepartmentID *int64 `json:"departmentId"`
}

// refreshRequest carries the opaque refresh token.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignIn handles the sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sign-in successful")
}

// SignUp handles the registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Username:     req.Username,
		Password:     req.Password,
		Nama:         req.Nama,
		Email:        req.Email,
		AddressID:    req.AddressID,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, output.Message)
}

// RefreshToken handles the token refresh request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Refresh(c.Request().Context(), usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// SignOut handles the sign-out request. The user comes from the validated
// access token; the raw header is passed through because the ledger keys
// on the exact token string.
func (h *AuthHandler) SignOut(c echo.Context) error {
	input := usecase.SignOutInput{
		AuthorizationHeader: c.Request().Header.Get("Authorization"),
	}
	if claims := deliverycontext.GetPrincipal(c.Request().Context()); claims != nil {
		input.UserID = claims.UserID
	}

	output, err := h.uc.SignOut(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Status)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
