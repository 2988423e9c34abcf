package handler

import (
	"log/slog"
	"net/http"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userRequest is the create/update payload for a user profile.
type userRequest struct {
	UserID       string `json:"userId"`
	Nama         string `json:"nama" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	DepartmentID *int64 `json:"departmentId"`
	AddressID    *int64 `json:"addressId"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAllUsers lists every user profile.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.uc.GetAllUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GetUserByID retrieves a single user profile.
func (h *UserHandler) GetUserByID(c echo.Context) error {
	user, err := h.uc.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// AddUser creates a new user profile.
func (h *UserHandler) AddUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.AddUser(c.Request().Context(), usecase.CreateUserInput{
		UserID:       req.UserID,
		Nama:         req.Nama,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		AddressID:    req.AddressID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser replaces the mutable fields of an existing profile.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), c.Param("id"), usecase.UpdateUserInput{
		Nama:         req.Nama,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		AddressID:    req.AddressID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser removes a user profile.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	output, err := h.uc.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Info)
}
