package errorsx

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a unique-constraint violation on create.
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError carries a user-facing message for rejected input. Any
// transaction in flight when one is raised gets rolled back.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
