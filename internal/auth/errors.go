package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSub         = errors.New("missing sub claim")
)
