package service

import "errors"

var (
	// ErrInvalidCredentials is returned for a wrong password as well as an
	// unknown callsign, so a caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists covers a duplicate callsign or email at registration.
	ErrUserExists = errors.New("user with this callsign or email already exists")

	// ErrForbidden marks an authenticated request touching a resource its
	// user does not own.
	ErrForbidden = errors.New("forbidden")
)
