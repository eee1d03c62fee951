package errors

import "fmt"

var (
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrUnknownView     = fmt.Errorf("unknown view")
	ErrInvalidToken    = fmt.Errorf("invalid session token")
	ErrDirectoryClosed = fmt.Errorf("directory is closed")
	ErrEmptySecret     = fmt.Errorf("session secret must not be empty")
)
