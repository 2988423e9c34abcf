package peer

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"taskhub/internal/domain/service"
)

var _ service.UserClient = (*UserClient)(nil)

// UserClient talks to the user service.
type UserClient struct {
	client *Client
}

// NewUserClient builds the user service client.
func NewUserClient(baseURL string, timeout time.Duration, logger *slog.Logger) *UserClient {
	return &UserClient{client: NewClient("user-service", baseURL, timeout, logger)}
}

// CreateUser provisions the user profile for a freshly registered account.
// Registration cannot complete without it, so failures escalate.
func (c *UserClient) CreateUser(ctx context.Context, req *service.CreateUserRequest) error {
	_, err := FetchRequired[service.UserDTO](ctx, c.client, http.MethodPost, "/api/user/addUser", req, "addUser")
	return err
}

// GetUserByID fetches the profile used to enrich task views. The view is
// still meaningful without it, so failures degrade to nil.
func (c *UserClient) GetUserByID(ctx context.Context, userID string) *service.UserDTO {
	return FetchOptional[service.UserDTO](ctx, c.client, http.MethodGet, "/api/user/getUserById/"+userID, nil, "getUserById")
}
