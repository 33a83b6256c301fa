package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the handlers map to HTTP statuses. Services wrap them
// with fmt.Errorf("... %w", ...) so the message stays descriptive while
// errors.Is still matches.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrInvalid  = errors.New("invalid")
)

func notFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}
