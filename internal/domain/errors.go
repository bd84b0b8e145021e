package domain

import (
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks across layers.
var (
	ErrNotFound           = fmt.Errorf("not found")
	ErrValidation         = fmt.Errorf("validation failed")
	ErrConflict           = fmt.Errorf("already exists")
	ErrBackendUnavailable = fmt.Errorf("backend unavailable")
)

// NotFoundError indicates the backend has no such resource.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Is allows errors.Is() to match against ErrNotFound
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError indicates invalid input, rejected either locally or by
// the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// BackendError carries a non-success HTTP status from the backend together
// with whatever detail the response body held.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

// Is maps backend statuses onto the sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest
	case ErrConflict:
		return e.Status == http.StatusConflict
	case ErrBackendUnavailable:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}
