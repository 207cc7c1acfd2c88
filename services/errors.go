package services

import "fmt"

// ValidationError marks missing or malformed input. Handlers translate it
// to a 400 response; anything else that is not a NotFound becomes a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
