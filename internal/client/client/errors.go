package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid request")
	ErrTooManyAttempts = errors.New("too many attempts, try again later")
	ErrVaultChanged    = errors.New("vault changed on the server, reload and retry")
)
