package middleware

import (
	"strings"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenIssuer service.TokenIssuer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenIssuer service.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{tokenIssuer: tokenIssuer}
}

// Authenticate validates the bearer access token and stores its claims on
// the request context for handlers and usecases.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenIssuer.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), claims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
