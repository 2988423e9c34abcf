// Package response defines the envelope every service answers with. Peer
// services decode the same shape, so the field set here is part of the
// wire contract between services.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified API envelope.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Success writes a successful envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Data:    data,
		Message: message,
		Code:    statusCode,
	})
}

// Error writes an error envelope with no data.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Message: message,
		Code:    statusCode,
	})
}

// BindingError 400 for malformed request bodies
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}
