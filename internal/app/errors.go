package app

import "errors"

// Service-level errors. Handlers map these onto HTTP statuses; anything
// not listed here surfaces as a generic server error.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrUserNotFound      = errors.New("user not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrNoChanges         = errors.New("no changes")
	ErrWrongPassword     = errors.New("old password is incorrect")
)
