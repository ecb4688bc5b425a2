package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no recipe exists for a given id.
var ErrNotFound = errors.New("recipe not found")

// ValidationError reports bad or missing required input.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
