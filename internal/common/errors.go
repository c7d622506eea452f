package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Auth errors.
	ErrUnauthorized   = errors.New("unauthorized")
	ErrAuthentication = errors.New("wrong credentials")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Input errors.
	ErrValidation = errors.New("validation error")
)
