package errors

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserInactive         = errors.New("user is not active")
	ErrDirectoryUnavailable = errors.New("user service unavailable")
)
