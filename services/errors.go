package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")

	ErrCartEmpty = fmt.Errorf("%w: Cart is empty", ErrInvalidState)
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	Key      string
	Value    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %s not found", e.Resource, e.Key, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
