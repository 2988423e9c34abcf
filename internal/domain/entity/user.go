package entity

import "time"

// User is the profile record owned by the user service. Department and
// address live in their own peer services and are referenced by id only;
// read paths enrich them over HTTP.
type User struct {
	UserID       string // Same identifier as the auth-service principal.
	Name         string
	Email        string
	DepartmentID *int64 // nil when the user has no department.
	AddressID    *int64 // nil when the user has no address.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
