// Package apperr holds the error taxonomy shared by the domain packages.
// Not-found and auth sentinels live next to the code that raises them;
// validation failures carry the offending field path and are matched with
// errors.As, so handlers can map them to a status code in one place.
package apperr

import "fmt"

// ValidationError reports malformed or invariant-violating input.
// Field is a path into the request document, e.g. "plans[1].slots.lunch.type".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for the given field path.
func Validation(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
