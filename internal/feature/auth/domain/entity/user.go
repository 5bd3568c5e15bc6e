// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Well-known role labels. Role is an open enumeration; these are the values
// the route guards care about.
const (
	RoleMember    = "member"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User represents a registered user in the system.
type User struct {
	// ID is the opaque unique identifier assigned at creation.
	ID string

	// Name is the display name.
	Name string

	// Email is the login key. It is stored normalized and is unique across all users.
	Email string

	// PasswordHash is the encoded bcrypt hash. It never holds plaintext and
	// is never returned to clients.
	PasswordHash string `json:"-"`

	// Role gates access to privileged routes.
	Role string

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	return u != nil && u.Role == role
}
