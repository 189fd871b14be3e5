package domain

import "errors"

var (
	// ErrUserAlreadyExists is returned when an email or username is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the given identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for tokens that fail signature, expiry,
	// shape or kind checks.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInactiveUser is returned when a deactivated account attempts to authenticate.
	ErrInactiveUser = errors.New("inactive user")
	// ErrInvalidInput indicates a request field that fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMathOperation indicates invalid input to a math operation.
	ErrMathOperation = errors.New("math operation error")
)
