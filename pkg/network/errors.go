package network

import "errors"

var (
	// ErrPasswordLength is returned by SignUp for passwords outside the
	// 4..8 character range.
	ErrPasswordLength = errors.New("password must have between 4 and 8 characters")

	// ErrUsernameTaken is returned by SignUp for an already registered username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned for operations on an unregistered username.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrAlreadyInitialized is returned by Init when the process network was
	// already initialized and the reuse policy is not enabled.
	ErrAlreadyInitialized = errors.New("network already initialized")

	// ErrNotInitialized is returned by Instance before Init has run.
	ErrNotInitialized = errors.New("network not initialized")
)
