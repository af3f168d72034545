package domain

import "errors"

// Error taxonomy. Every failure a handler can surface maps to exactly one of
// these; the API layer translates them to HTTP statuses and the
// {message, code} envelope.
var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("a token is required for authentication")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoMatch            = errors.New("no results for the given parameters")
)
