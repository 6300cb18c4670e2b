package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrTimetableNotFound  = errors.New("no saved timetable")
)

// ValidationError reports missing required form fields. It is raised
// before any request is issued.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// AuthError carries the server's detail message for credential failures
// and signup conflicts.
type AuthError struct {
	StatusCode int
	Detail     string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}

	return fmt.Sprintf("authentication failed (status %d)", e.StatusCode)
}

// DataShapeError marks a successful response that is missing an expected
// field.
type DataShapeError struct {
	Operation string
	Field     string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("%s response missing %q", e.Operation, e.Field)
}
