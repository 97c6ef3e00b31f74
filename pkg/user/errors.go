package user

import "errors"

var (
	// ErrInvalidPassword is returned when a supplied password does not match
	// the stored digest.
	ErrInvalidPassword = errors.New("incorrect password")

	// ErrAlreadyLoggedIn is returned by LogIn on a logged-in user.
	ErrAlreadyLoggedIn = errors.New("already logged in")

	// ErrNotLoggedIn is returned when an operation requires an active login.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotFollowing is returned when unfollowing a user that is not followed.
	ErrNotFollowing = errors.New("not following this user")

	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
