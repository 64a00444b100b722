package utils

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidDisplayName = errors.New("display name too short")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPostNotFound       = errors.New("post not found")
	ErrDatabaseError      = errors.New("database error")
)
