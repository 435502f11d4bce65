package domain

import "errors"

// Sentinel errors returned by services and repositories. The API layer maps
// each one to a deterministic HTTP status in the central error handler.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrJobNotOpen         = errors.New("job is not open")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrProposalNotPending = errors.New("proposal is not pending")
)
