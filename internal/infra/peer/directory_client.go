package peer

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"taskhub/internal/domain/service"
)

var _ service.DirectoryClient = (*DirectoryClient)(nil)

// DirectoryClient talks to the directory service for department and
// address lookups. Both lookups only enrich responses, so every failure
// degrades to nil.
type DirectoryClient struct {
	client *Client
}

// NewDirectoryClient builds the directory service client.
func NewDirectoryClient(baseURL string, timeout time.Duration, logger *slog.Logger) *DirectoryClient {
	return &DirectoryClient{client: NewClient("directory-service", baseURL, timeout, logger)}
}

// GetDepartmentByID fetches one department, or nil when unavailable.
func (c *DirectoryClient) GetDepartmentByID(ctx context.Context, departmentID int64) *service.DepartmentDTO {
	path := "/api/department/getDepartmentById/" + strconv.FormatInt(departmentID, 10)
	return FetchOptional[service.DepartmentDTO](ctx, c.client, http.MethodGet, path, nil, "getDepartmentById")
}

// GetAddressByID fetches one address, or nil when unavailable.
func (c *DirectoryClient) GetAddressByID(ctx context.Context, addressID int64) *service.AddressDTO {
	path := "/api/address/getAddressById/" + strconv.FormatInt(addressID, 10)
	return FetchOptional[service.AddressDTO](ctx, c.client, http.MethodGet, path, nil, "getAddressById")
}
