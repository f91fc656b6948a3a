package admin

import "errors"

var (
	// ErrAdminNotFound is returned when no admin matches the lookup
	ErrAdminNotFound = errors.New("admin not found")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
)
