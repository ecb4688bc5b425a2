package upstream

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned when no credential is configured. Proxy routes
// degrade with an upstream error; the process keeps serving local CRUD.
var ErrNoAPIKey = errors.New("spoonacular api key is not configured")

// UpstreamError carries the status and detail of a failed upstream call.
// The credential is never included in the message.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}
