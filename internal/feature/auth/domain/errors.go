// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication and authorization operations.
// The transport layer maps each of them to exactly one HTTP status.
var (
	// ErrValidation indicates missing or malformed input that the client can fix.
	// Concrete failures wrap it with the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// Unknown email and wrong password both produce this error.
	ErrInvalidCredentials = errors.New("email or password is invalid")

	// ErrUnauthenticated indicates a missing, invalid or expired access token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates a valid identity lacking the required role.
	ErrForbidden = errors.New("access denied")
)
