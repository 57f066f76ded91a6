package booking

import (
	"errors"
	"fmt"
)

// ValidationError is a field-level submission failure. It is raised before
// any order write, so the caller can surface it inline and let the user
// correct and resubmit without losing entered data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidationError reports whether err is a field-level validation failure,
// as opposed to a collaborator error that should surface as a server fault.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
