package domain

import "time"

// Role represents the user's permission level in the system.
type Role string

const (
	// RoleAdmin grants full administrative access.
	RoleAdmin Role = "admin"
	// RoleUser grants standard user access.
	RoleUser Role = "user"
)

// User represents an account resolved from an external identity provider.
// Accounts are created lazily on first authenticated request, keyed by OpenID.
type User struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"open_id"` // External identity, unique
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	LoginMethod  string    `json:"login_method,omitempty"` // e.g. line, google
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

// IsAdmin returns true if the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName returns the best available name for the user.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Unknown User"
}
