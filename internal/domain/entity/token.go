package entity

import "time"

// RefreshToken represents a long-lived, authorized user session. The token
// string itself is the opaque credential handed to the client; it is never
// rotated on refresh and stays valid until its original expiry.
type RefreshToken struct {
	Token     string    // Opaque random token string, unique per session.
	UserID    string    // Owning principal.
	ExpiresAt time.Time // Hard expiry; expired rows are deleted on first use.
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// ActiveToken is the ledger entry for an issued access token. Sign-out flips
// IsActive so the token can be rejected before its natural expiry.
type ActiveToken struct {
	Token     string // The signed access token string.
	UserID    string // Owning principal.
	IsActive  bool
	CreatedAt time.Time
}
