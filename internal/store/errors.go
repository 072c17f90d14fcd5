package store

import "errors"

// Domain errors; handlers map these to HTTP status codes with errors.Is.
var (
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidCredentials is deliberately the same for an unknown email and
	// a wrong password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPeerNotFound       = errors.New("no user with this email")
	ErrDuplicateContact   = errors.New("contact already exists")
)
