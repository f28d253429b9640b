package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrForbidden     = errors.New("action not allowed for this role")
	ErrValidation    = errors.New("validation error")
	ErrUsernameTaken = errors.New("username already taken")
)
