package models

import "errors"

// Service error taxonomy. Repositories and services wrap these with context;
// handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrEmptyContent        = errors.New("content must not be empty")
	ErrInvalidReactionType = errors.New("invalid reaction type")
	ErrDuplicate           = errors.New("duplicate entry")
	ErrEmailTaken          = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
