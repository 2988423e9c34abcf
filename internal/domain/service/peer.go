package service

import "context"

// UserDTO is the user record as served by the peer user service.
type UserDTO struct {
	UserID     string         `json:"userId"`
	Nama       string         `json:"nama"`
	Email      string         `json:"email"`
	Department *DepartmentDTO `json:"department,omitempty"`
	Address    *AddressDTO    `json:"address,omitempty"`
}

// DepartmentDTO is the department record as served by the department peer.
type DepartmentDTO struct {
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
}

// AddressDTO is the address record as served by the address peer.
type AddressDTO struct {
	AddressID int64  `json:"addressId"`
	Street    string `json:"street"`
	City      string `json:"city"`
}

// CreateUserRequest is the payload sent to the peer user service when the
// auth service provisions the profile linked to a new principal.
type CreateUserRequest struct {
	UserID       string `json:"userId"`
	Nama         string `json:"nama"`
	Email        string `json:"email"`
	AddressID    *int64 `json:"addressId"`
	DepartmentID *int64 `json:"departmentId"`
}

// UserClient is the typed surface over the user peer service.
type UserClient interface {
	// CreateUser provisions the linked profile record. A mandatory side
	// effect of sign-up: any failure escalates to the caller.
	CreateUser(ctx context.Context, req *CreateUserRequest) error

	// GetUserByID fetches a user for response enrichment. An optional
	// lookup: any failure degrades to nil, never an error.
	GetUserByID(ctx context.Context, userID string) *UserDTO
}

// DirectoryClient is the typed surface over the department and address peers.
// All lookups are optional enrichment and degrade to nil on failure.
type DirectoryClient interface {
	GetDepartmentByID(ctx context.Context, departmentID int64) *DepartmentDTO
	GetAddressByID(ctx context.Context, addressID int64) *AddressDTO
}
