// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Principal is the authenticated identity record owned by the auth service.
// The password hash is opaque to the rest of the system and never leaves
// this entity.
type Principal struct {
	UserID       string    // Stable opaque identifier, generated at sign-up.
	Username     string    // Unique login name.
	PasswordHash string    // bcrypt hash of the password, never exposed.
	Locked       bool      // Account is administratively locked.
	Disabled     bool      // Account is disabled and may not sign in.
	ExpiresAt    *time.Time // Optional account expiry; nil means never expires.
	CreatedAt    time.Time
}

// Expired reports whether the account itself (not a token) has expired.
func (p *Principal) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}
